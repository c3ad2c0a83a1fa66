// file: controllers/participation_controller.go
package controllers

import (
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

// ParticipationController exposes captain/coordinator assignment, individual
// enrollment and the team lifecycle.
type ParticipationController struct {
	svc *services.ParticipationService
}

func NewParticipationController(svc *services.ParticipationService) *ParticipationController {
	return &ParticipationController{svc: svc}
}

func sportIDParam(c *gin.Context) (uint32, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid sport ID")
		return 0, false
	}
	return uint32(id), true
}

func (ctl *ParticipationController) AssignCaptain(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	var req dto.RolePlayerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}
	if err := ctl.svc.AssignCaptain(sportID, req.RegNumber); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Captain assigned successfully", nil)
}

func (ctl *ParticipationController) RemoveCaptain(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	if err := ctl.svc.RemoveCaptain(sportID, c.Param("reg")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Captain removed successfully", nil)
}

func (ctl *ParticipationController) AssignCoordinator(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	var req dto.RolePlayerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}
	if err := ctl.svc.AssignCoordinator(sportID, req.RegNumber); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Coordinator assigned successfully", nil)
}

func (ctl *ParticipationController) RemoveCoordinator(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	if err := ctl.svc.RemoveCoordinator(sportID, c.Param("reg")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Coordinator removed successfully", nil)
}

// Enroll registers a player individually. Players enroll themselves; an
// admin may pass another player's registration number.
func (ctl *ParticipationController) Enroll(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	var req dto.RolePlayerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}
	if req.RegNumber != actingReg(c) && !isAdmin(c) {
		utils.Error(c, 4003, "Permission denied: players may only enroll themselves")
		return
	}
	if err := ctl.svc.Enroll(sportID, req.RegNumber, time.Now()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Enrolled successfully", nil)
}

func (ctl *ParticipationController) RemoveParticipation(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	reg := c.Param("reg")
	if reg != actingReg(c) && !isAdmin(c) {
		utils.Error(c, 4003, "Permission denied")
		return
	}
	if err := ctl.svc.RemoveParticipation(sportID, reg); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Participation removed successfully", nil)
}

// CreateTeam creates a team on behalf of the acting user, who must be the
// team's eligible captain and part of the member list.
func (ctl *ParticipationController) CreateTeam(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	var req dto.CreateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	team, err := ctl.svc.CreateTeam(sportID, actingReg(c), req.TeamName, req.Members, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Team created successfully", mappers.MapTeamToItemResp(*team))
}

func (ctl *ParticipationController) ReplaceMember(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid team ID")
		return
	}
	var req dto.ReplaceMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}
	if ok, deny := ctl.teamOperationAllowed(c, sportID, uint32(teamID)); !ok {
		utils.Error(c, 4003, deny)
		return
	}
	if err := ctl.svc.ReplaceMember(sportID, uint32(teamID), req.OldRegNumber, req.NewRegNumber, time.Now()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Member replaced successfully", nil)
}

func (ctl *ParticipationController) DeleteTeam(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid team ID")
		return
	}
	if ok, deny := ctl.teamOperationAllowed(c, sportID, uint32(teamID)); !ok {
		utils.Error(c, 4003, deny)
		return
	}
	if err := ctl.svc.DeleteTeam(sportID, uint32(teamID)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Team deleted successfully", nil)
}

// teamOperationAllowed admits admins, the sport's coordinators and the
// team's own captain.
func (ctl *ParticipationController) teamOperationAllowed(c *gin.Context, sportID, teamID uint32) (bool, string) {
	if isAdmin(c) {
		return true, ""
	}
	reg := actingReg(c)
	if coordinator, err := ctl.svc.IsCoordinator(sportID, reg); err == nil && coordinator {
		return true, ""
	}
	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err == nil && team.CaptainReg == reg {
		return true, ""
	}
	return false, "Permission denied: not an admin, coordinator or the team captain"
}

func (ctl *ParticipationController) GetTeams(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	var teams []models.Team
	err := database.DB.Where("sport_id = ?", sportID).Preload("Members").Find(&teams).Error
	if err != nil {
		utils.Error(c, 5000, "Failed to query teams")
		return
	}
	items := make([]interface{}, 0, len(teams))
	for _, t := range teams {
		items = append(items, mappers.MapTeamToItemResp(t))
	}
	utils.Success(c, "success", gin.H{"total": len(items), "teams": items})
}
