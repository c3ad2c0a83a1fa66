// file: controllers/standings_controller.go
package controllers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"sportsfest/database"
	"sportsfest/models"
	"sportsfest/services"
	"sportsfest/utils"
)

// StandingsController serves the league points table per gender partition.
type StandingsController struct {
	svc *services.StandingsService
}

func NewStandingsController(svc *services.StandingsService) *StandingsController {
	return &StandingsController{svc: svc}
}

func (ctl *StandingsController) Get(c *gin.Context) {
	sportID, ok := sportIDParam(c)
	if !ok {
		return
	}
	gender := models.Gender(c.Query("gender"))
	if gender != models.GenderMale && gender != models.GenderFemale {
		utils.Error(c, 1001, "gender query parameter must be male or female")
		return
	}

	cacheKey := services.StandingsKey(sportID, string(gender))
	if database.RDB != nil {
		if cached, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
			var rows []models.Standing
			if json.Unmarshal([]byte(cached), &rows) == nil {
				utils.Success(c, "success", gin.H{"total": len(rows), "standings": rows})
				return
			}
		}
	}

	rows, err := ctl.svc.Get(sportID, gender)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(rows) == 0 {
		// First read after a reset; rebuild from match history.
		if err := ctl.svc.Recompute(sportID); err != nil {
			respondServiceError(c, err)
			return
		}
		if rows, err = ctl.svc.Get(sportID, gender); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	if database.RDB != nil {
		if raw, err := json.Marshal(rows); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, raw, 5*time.Minute)
		}
	}
	utils.Success(c, "success", gin.H{"total": len(rows), "standings": rows})
}
