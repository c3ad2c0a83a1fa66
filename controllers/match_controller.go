// file: controllers/match_controller.go
package controllers

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sportsfest/database"
	"sportsfest/dto"
	"sportsfest/mappers"
	"sportsfest/models"
	"sportsfest/services"
	"sportsfest/utils"
)

// MatchController exposes the match lifecycle and the bracket read queries.
type MatchController struct {
	matches   *services.MatchService
	parts     *services.ParticipationService
	standings *services.StandingsService
}

func NewMatchController(matches *services.MatchService, parts *services.ParticipationService, standings *services.StandingsService) *MatchController {
	return &MatchController{matches: matches, parts: parts, standings: standings}
}

// scheduleAllowed admits admins and the sport's coordinators.
func (ctl *MatchController) scheduleAllowed(c *gin.Context, sportID uint32) bool {
	if isAdmin(c) {
		return true
	}
	coordinator, err := ctl.parts.IsCoordinator(sportID, actingReg(c))
	return err == nil && coordinator
}

func (ctl *MatchController) Create(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	if !ctl.scheduleAllowed(c, sportID) {
		utils.Error(c, 4003, "Permission denied: not an admin or sport coordinator")
		return
	}
	var req dto.CreateMatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	match, err := ctl.matches.Create(sportID, models.MatchType(req.MatchType), req.MatchDate, req.Participants, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Match scheduled successfully", mappers.MapMatchToResp(*match))
}

func (ctl *MatchController) matchIDParam(c *gin.Context) (uint32, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid match ID")
		return 0, false
	}
	return uint32(id), true
}

// loadForAuth resolves the match's sport for the coordinator check.
func (ctl *MatchController) loadForAuth(c *gin.Context, matchID uint32) (*models.Match, bool) {
	var match models.Match
	if err := database.DB.First(&match, matchID).Error; err != nil {
		utils.Error(c, 4004, "Match not found")
		return nil, false
	}
	if !ctl.scheduleAllowed(c, match.SportID) {
		utils.Error(c, 4003, "Permission denied: not an admin or sport coordinator")
		return nil, false
	}
	return &match, true
}

func (ctl *MatchController) UpdateStatus(c *gin.Context) {
	matchID, ok := ctl.matchIDParam(c)
	if !ok {
		return
	}
	if _, ok := ctl.loadForAuth(c, matchID); !ok {
		return
	}
	var req dto.UpdateMatchStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}

	match, err := ctl.matches.UpdateStatus(matchID, models.MatchStatus(req.Status), time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	ctl.refreshStandings(match)
	utils.Success(c, "Match status updated successfully", mappers.MapMatchToResp(*match))
}

func (ctl *MatchController) DeclareWinner(c *gin.Context) {
	matchID, ok := ctl.matchIDParam(c)
	if !ok {
		return
	}
	if _, ok := ctl.loadForAuth(c, matchID); !ok {
		return
	}
	var req dto.DeclareWinnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}

	match, err := ctl.matches.DeclareWinner(matchID, req.Winner)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	ctl.refreshStandings(match)
	utils.Success(c, "Winner declared successfully", mappers.MapMatchToResp(*match))
}

func (ctl *MatchController) DeclareQualifiers(c *gin.Context) {
	matchID, ok := ctl.matchIDParam(c)
	if !ok {
		return
	}
	if _, ok := ctl.loadForAuth(c, matchID); !ok {
		return
	}
	var req dto.DeclareQualifiersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}

	match, err := ctl.matches.DeclareQualifiers(matchID, req.Qualifiers)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Qualifiers declared successfully", mappers.MapMatchToResp(*match))
}

func (ctl *MatchController) Delete(c *gin.Context) {
	matchID, ok := ctl.matchIDParam(c)
	if !ok {
		return
	}
	if _, ok := ctl.loadForAuth(c, matchID); !ok {
		return
	}
	if err := ctl.matches.Delete(matchID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Match deleted successfully", nil)
}

// refreshStandings keeps the league table in sync after a league match is
// resolved.
func (ctl *MatchController) refreshStandings(match *models.Match) {
	if match.Type != models.MatchLeague {
		return
	}
	if err := ctl.standings.Recompute(match.SportID); err != nil {
		// Standings are derived data; the match update already committed.
		log.Printf("Failed to recompute standings for sport %d: %v", match.SportID, err)
	}
}

// List serves the sport's match schedule, cached until the next mutation.
func (ctl *MatchController) List(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}

	cacheKey := services.MatchListKey(sportID)
	if database.RDB != nil {
		if cached, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
			var items []dto.MatchResp
			if json.Unmarshal([]byte(cached), &items) == nil {
				utils.Success(c, "success", gin.H{"total": len(items), "matches": items})
				return
			}
		}
	}

	matches, err := ctl.matches.ListBySport(sportID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	items := mappers.MapMatchesToResp(matches)
	if database.RDB != nil {
		if raw, err := json.Marshal(items); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, raw, 5*time.Minute)
		}
	}
	utils.Success(c, "success", gin.H{"total": len(items), "matches": items})
}

// Active derives the surviving participants of one gender partition.
func (ctl *MatchController) Active(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	gender := models.Gender(c.Query("gender"))
	if gender != models.GenderMale && gender != models.GenderFemale {
		utils.Error(c, 1001, "gender query parameter must be male or female")
		return
	}

	active, err := ctl.matches.ActiveForSport(sportID, gender)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "success", gin.H{
		"gender": gender,
		"total":  len(active),
		"active": active,
	})
}
