// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TodayBookings   int64            `json:"todayBookings"`
	PendingBookings int64            `json:"pendingBookings"`
	TotalBookings   int64            `json:"totalBookings"`
	ActiveServices  int64            `json:"activeServices"`
	NextBookings    []models.Booking `json:"nextBookings"`
}

// GetDashboardOverview returns booking counts and the next few upcoming
// appointments for the provider's salon.
func GetDashboardOverview(c *gin.Context) {
	salon, ok := currentSalon(c)
	if !ok {
		return
	}

	today := time.Now().Format(utils.DateLayout)
	var overview DashboardOverview

	config.DB.Model(&models.Booking{}).
		Where("salon_id = ? AND appointment_date = ? AND status IN ?",
			salon.ID, today, models.OccupyingStatuses).
		Count(&overview.TodayBookings)

	config.DB.Model(&models.Booking{}).
		Where("salon_id = ? AND status = ?", salon.ID, models.StatusPending).
		Count(&overview.PendingBookings)

	config.DB.Model(&models.Booking{}).
		Where("salon_id = ?", salon.ID).
		Count(&overview.TotalBookings)

	config.DB.Model(&models.Service{}).
		Where("salon_id = ? AND is_active = ?", salon.ID, true).
		Count(&overview.ActiveServices)

	if err := config.DB.Preload("Client").Preload("Service").
		Where("salon_id = ? AND appointment_date >= ? AND status IN ?",
			salon.ID, today, models.OccupyingStatuses).
		Order("appointment_date ASC, appointment_time ASC").
		Limit(5).
		Find(&overview.NextBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, overview)
}
