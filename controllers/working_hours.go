// controllers/working_hours.go
package controllers

import (
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WorkingHoursInput is one weekday's schedule.
type WorkingHoursInput struct {
	DayOfWeek int     `json:"day_of_week" binding:"min=0,max=6"`
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
}

// GetWorkingHours returns the provider salon's schedule, ordered Monday first.
func GetWorkingHours(c *gin.Context) {
	salon, ok := currentSalon(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := config.DB.Where("salon_id = ?", salon.ID).
		Order("day_of_week ASC").Find(&hours).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve working hours")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// UpdateWorkingHours replaces the salon's whole weekly schedule. Days not in
// the payload end up with no row, which availability treats as closed.
func UpdateWorkingHours(c *gin.Context) {
	salon, ok := currentSalon(c)
	if !ok {
		return
	}

	var input []WorkingHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	rows := make([]models.WorkingHours, 0, len(input))
	seen := make(map[int]bool, len(input))
	for _, day := range input {
		if seen[day.DayOfWeek] {
			utils.RespondWithError(c, http.StatusBadRequest, "Duplicate day_of_week in payload")
			return
		}
		seen[day.DayOfWeek] = true

		row := models.WorkingHours{
			SalonID:   salon.ID,
			DayOfWeek: day.DayOfWeek,
			IsOpen:    day.IsOpen,
			OpenTime:  day.OpenTime,
			CloseTime: day.CloseTime,
		}
		if err := row.Validate(); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		rows = append(rows, row)
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("salon_id = ?", salon.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, rows)
}
