// file: controllers/helpers.go
package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportsfest/models"
	"sportsfest/services"
	"sportsfest/utils"
)

// respondServiceError maps the service error taxonomy onto the response
// envelope: 3001 rule violations (with the full list), 3002 state errors,
// 3003 write conflicts, 4004 not found, 5000 everything else.
func respondServiceError(c *gin.Context, err error) {
	if ve, ok := services.AsValidation(err); ok {
		utils.ErrorData(c, 3001, "Request violates tournament rules", gin.H{"violations": ve.Violations})
		return
	}

	switch {
	case errors.Is(err, services.ErrSportNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrPlayerNotFound):
		utils.Error(c, 4004, err.Error())
	case errors.Is(err, services.ErrNotTeamSport),
		errors.Is(err, services.ErrAlreadyCaptain),
		errors.Is(err, services.ErrCaptainHasTeam),
		errors.Is(err, services.ErrNotCaptain),
		errors.Is(err, services.ErrCoordinatorConflict),
		errors.Is(err, services.ErrAlreadyCoordinator),
		errors.Is(err, services.ErrNotCoordinator),
		errors.Is(err, services.ErrNotParticipating),
		errors.Is(err, services.ErrCaptainImmutable),
		errors.Is(err, services.ErrSportReferenced),
		errors.Is(err, services.ErrMatchNotScheduled),
		errors.Is(err, services.ErrMatchDateNotReached),
		errors.Is(err, services.ErrWinnerRequiresDone),
		errors.Is(err, services.ErrWinnerNotInMatch),
		errors.Is(err, services.ErrWinnerMultiMatch),
		errors.Is(err, services.ErrQualifierNotInMatch),
		errors.Is(err, services.ErrQualifiersDualMatch):
		utils.Error(c, 3002, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		utils.Error(c, 3003, "Conflicting write, please retry")
	default:
		utils.Error(c, 5000, "Database error")
	}
}

func actingReg(c *gin.Context) string {
	regAny, _ := c.Get("reg_number")
	reg, _ := regAny.(string)
	return reg
}

func isAdmin(c *gin.Context) bool {
	roleAny, _ := c.Get("user_role")
	role, _ := roleAny.(models.UserRole)
	return role == models.RoleAdmin
}
