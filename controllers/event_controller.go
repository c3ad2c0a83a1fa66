// file: controllers/event_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sportsfest/database"
	"sportsfest/models"
	"sportsfest/utils"
)

func CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	if !event.RegistrationStart.Before(event.RegistrationEnd) || !event.EventStart.Before(event.EventEnd) {
		utils.Error(c, 1001, "event windows must start before they end")
		return
	}

	event.ScopeKey = utils.GenerateScopeKey()
	event.DisplayCode = utils.GenerateDisplayCode(8)

	if err := database.DB.Create(&event).Error; err != nil {
		utils.Error(c, 5000, "Failed to create event")
		return
	}

	utils.Success(c, "Event created successfully", gin.H{
		"id":           event.ID,
		"scope_key":    event.ScopeKey,
		"display_code": event.DisplayCode,
	})
}

func GetEventList(c *gin.Context) {
	var events []models.Event
	if err := database.DB.Order("event_start desc").Find(&events).Error; err != nil {
		utils.Error(c, 5000, "Failed to query events")
		return
	}
	utils.Success(c, "success", gin.H{"total": len(events), "events": events})
}

func GetEventDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		utils.Error(c, 4004, "Event not found")
		return
	}
	utils.Success(c, "success", event)
}

func UpdateEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		utils.Error(c, 4004, "Event not found")
		return
	}

	var req struct {
		EventName         string `json:"event_name"`
		RegistrationStart string `json:"registration_start"`
		RegistrationEnd   string `json:"registration_end"`
		EventStart        string `json:"event_start"`
		EventEnd          string `json:"event_end"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}

	updates := map[string]interface{}{}
	if req.EventName != "" {
		updates["event_name"] = req.EventName
	}
	for field, value := range map[string]string{
		"registration_start": req.RegistrationStart,
		"registration_end":   req.RegistrationEnd,
		"event_start":        req.EventStart,
		"event_end":          req.EventEnd,
	} {
		if value != "" {
			updates[field] = value
		}
	}
	if len(updates) == 0 {
		utils.Error(c, 1001, "Nothing to update")
		return
	}

	if err := database.DB.Model(&event).Updates(updates).Error; err != nil {
		utils.Error(c, 5000, "Failed to update event")
		return
	}
	utils.Success(c, "Event updated successfully", nil)
}
