// file: controllers/user_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"sportsfest/database"
	"sportsfest/models"
	"sportsfest/utils"
)

func Register(c *gin.Context) {
	var req struct {
		RegNumber string `json:"reg_number" binding:"required"`
		Name      string `json:"name" binding:"required"`
		Password  string `json:"password" binding:"required,min=6"`
		Gender    string `json:"gender" binding:"required"`
		BatchYear int    `json:"batch_year" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	gender := models.Gender(req.Gender)
	if gender != models.GenderMale && gender != models.GenderFemale {
		utils.Error(c, 1001, "gender must be male or female")
		return
	}

	var existing models.User
	if err := database.DB.Where("reg_number = ?", req.RegNumber).First(&existing).Error; err == nil {
		utils.Error(c, 3001, "Registration number already registered")
		return
	}

	user := models.User{
		RegNumber: req.RegNumber,
		Name:      req.Name,
		Password:  req.Password,
		Gender:    gender,
		BatchYear: req.BatchYear,
		Role:      models.RolePlayer,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		utils.Error(c, 5000, "Failed to register user")
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"id":         user.ID,
		"reg_number": user.RegNumber,
		"name":       user.Name,
	})
}

func Login(c *gin.Context) {
	var req struct {
		RegNumber string `json:"reg_number" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}

	var user models.User
	if err := database.DB.Where("reg_number = ?", req.RegNumber).First(&user).Error; err != nil {
		utils.Error(c, 4004, "Invalid registration number or password")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, 4004, "Invalid registration number or password")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5000, "Failed to generate token")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token":      token,
		"reg_number": user.RegNumber,
		"role":       user.Role,
	})
}
