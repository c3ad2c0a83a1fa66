// file: controllers/sport_controller.go
package controllers

import (
	"encoding/json"
	"fmt"
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

func CreateSport(c *gin.Context) {
	var req dto.CreateSportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	sportType := models.SportType(req.Type)
	if !sportType.Valid() {
		utils.Error(c, 1001, "type must be one of dual_team/multi_team/dual_player/multi_player")
		return
	}
	if sportType.IsTeam() {
		if req.TeamSize == nil || *req.TeamSize <= 0 {
			utils.Error(c, 1001, "team sports require a positive team_size")
			return
		}
	} else if req.TeamSize != nil {
		utils.Error(c, 1001, "player sports must not define team_size")
		return
	}

	var event models.Event
	if err := database.DB.First(&event, req.EventID).Error; err != nil {
		utils.Error(c, 4004, "Event not found")
		return
	}

	nameKey := models.NormalizeSportName(req.SportName)
	var existing models.Sport
	if err := database.DB.Where("event_id = ? AND name_key = ?", req.EventID, nameKey).First(&existing).Error; err == nil {
		utils.Error(c, 3001, "Sport name already exists for this event")
		return
	}

	sport := models.Sport{
		EventID:   req.EventID,
		SportName: req.SportName,
		NameKey:   nameKey,
		Type:      sportType,
		Category:  req.Category,
		TeamSize:  req.TeamSize,
	}
	if err := database.DB.Create(&sport).Error; err != nil {
		utils.Error(c, 5000, "Failed to create sport: "+err.Error())
		return
	}

	utils.Success(c, "Sport created successfully", gin.H{"id": sport.ID})
}

func GetSportList(c *gin.Context) {
	db := database.DB.Model(&models.Sport{})
	if eventID := c.Query("event_id"); eventID != "" {
		db = db.Where("event_id = ?", eventID)
	}
	var sports []models.Sport
	if err := db.Order("sport_name asc").Find(&sports).Error; err != nil {
		utils.Error(c, 5000, "Failed to query sports")
		return
	}
	utils.Success(c, "success", gin.H{"total": len(sports), "sports": sports})
}

// GetSportDetail serves the full participation picture of one sport,
// cached in redis until the next mutation invalidates it.
func GetSportDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid sport ID")
		return
	}
	sportID := uint32(id)

	cacheKey := services.SportDetailKey(sportID)
	if database.RDB != nil {
		if cached, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
			var resp dto.SportDetailResp
			if json.Unmarshal([]byte(cached), &resp) == nil {
				utils.Success(c, "success", resp)
				return
			}
		}
	}

	var sport models.Sport
	err = database.DB.
		Preload("Captains").
		Preload("Coordinators").
		Preload("Teams.Members").
		Preload("Entries").
		First(&sport, sportID).Error
	if err != nil {
		utils.Error(c, 4004, "Sport not found")
		return
	}

	resp := mappers.MapSportToDetailResp(sport)
	if database.RDB != nil {
		if raw, err := json.Marshal(resp); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, raw, 5*time.Minute)
		}
	}
	utils.Success(c, "success", resp)
}

// DeleteSport removes a sport only when nothing references it anymore.
func DeleteSport(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var sport models.Sport
	if err := database.DB.First(&sport, id).Error; err != nil {
		utils.Error(c, 4004, "Sport not found")
		return
	}

	for _, check := range []struct {
		model interface{}
		what  string
	}{
		{&models.Team{}, "teams"},
		{&models.IndividualEntry{}, "individual entries"},
		{&models.Match{}, "matches"},
		{&models.Standing{}, "standings"},
	} {
		var count int64
		if err := database.DB.Model(check.model).Where("sport_id = ?", id).Count(&count).Error; err != nil {
			utils.Error(c, 5000, "Database error")
			return
		}
		if count > 0 {
			respondServiceError(c, fmt.Errorf("%w: still has %s", services.ErrSportReferenced, check.what))
			return
		}
	}

	if err := database.DB.Where("sport_id = ?", id).Delete(&models.SportCaptain{}).Error; err != nil {
		utils.Error(c, 5000, "Failed to delete sport")
		return
	}
	if err := database.DB.Where("sport_id = ?", id).Delete(&models.SportCoordinator{}).Error; err != nil {
		utils.Error(c, 5000, "Failed to delete sport")
		return
	}
	if err := database.DB.Delete(&sport).Error; err != nil {
		utils.Error(c, 5000, "Failed to delete sport")
		return
	}

	services.InvalidateSportCaches(uint32(id))
	utils.Success(c, "Sport deleted successfully", nil)
}
