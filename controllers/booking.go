// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/scheduling"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxAdvanceDays is how far ahead a booking can be made.
const maxAdvanceDays = 30

func bookingSvc() *services.BookingService {
	return services.NewBookingService(config.DB)
}

// CreateBookingInput defines the expected JSON structure for a new booking
type CreateBookingInput struct {
	SalonID         string `json:"salon_id" binding:"required"`
	ServiceID       string `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Notes           string `json:"notes" binding:"max=500"`
}

// UpdateBookingStatusInput carries the requested status change.
type UpdateBookingStatusInput struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// GetAvailability returns the slot grid for a salon, date and service.
// Closed or unconfigured days come back as an empty grid, not an error.
func GetAvailability(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	serviceUUID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing service_id")
		return
	}

	date, ok := parseBookableDate(c, c.Query("date"))
	if !ok {
		return
	}

	slots, err := bookingSvc().DayAvailability(salonUUID, serviceUUID, date)
	if err != nil {
		if errors.Is(err, services.ErrUnknownService) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown service")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute availability")
		}
		return
	}

	if slots == nil {
		slots = []scheduling.Slot{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format(utils.DateLayout),
		"slots": slots,
	})
}

// CreateBooking books a slot for the authenticated client.
func CreateBooking(c *gin.Context) {
	clientUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	salonUUID, err := uuid.Parse(input.SalonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	date, ok := parseBookableDate(c, input.AppointmentDate)
	if !ok {
		return
	}

	start, err := scheduling.ParseClock(input.AppointmentTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment_time, expected HH:MM")
		return
	}

	booking, err := bookingSvc().CreateBooking(clientUUID, salonUUID, serviceUUID, date, start, input.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotConflict):
			utils.RespondWithError(c, http.StatusConflict, "This slot was just taken, please pick another")
		case errors.Is(err, services.ErrUnknownService):
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown service")
		default:
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings lists the authenticated client's bookings, newest first.
func GetMyBookings(c *gin.Context) {
	clientUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Salon").Preload("Service").
		Where("client_id = ?", clientUUID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking lets a client cancel their own pending or confirmed booking.
func CancelBooking(c *gin.Context) {
	clientUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ? AND client_id = ?", bookingUUID, clientUUID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	updated, err := bookingSvc().UpdateStatus(booking.ID, models.StatusCancelled)
	if err != nil {
		if errors.Is(err, services.ErrBadTransition) {
			utils.RespondWithError(c, http.StatusConflict, "Booking can no longer be cancelled")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetSalonBookings lists the provider salon's bookings, optionally filtered
// by date and status.
func GetSalonBookings(c *gin.Context) {
	salon, ok := currentSalon(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Client").Preload("Service").
		Where("salon_id = ?", salon.ID)

	if date := c.Query("date"); date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("appointment_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		if !models.BookingStatus(status).Valid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown booking status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("appointment_date ASC, appointment_time ASC").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus lets a provider confirm, reject, complete or cancel a
// booking for their salon. Transitions are state-machine checked.
func UpdateBookingStatus(c *gin.Context) {
	salon, ok := currentSalon(c)
	if !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown booking status")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ? AND salon_id = ?", bookingUUID, salon.ID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	updated, err := bookingSvc().UpdateStatus(booking.ID, input.Status)
	if err != nil {
		if errors.Is(err, services.ErrBadTransition) {
			utils.RespondWithError(c, http.StatusConflict, "Status change not allowed from "+string(booking.Status))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// parseBookableDate validates a YYYY-MM-DD date and keeps it within the
// bookable window: not in the past, at most maxAdvanceDays ahead.
func parseBookableDate(c *gin.Context, raw string) (time.Time, bool) {
	date, err := utils.ParseDate(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}

	today := utils.BeginningOfDay(time.Now())
	if date.Before(today) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date is in the past")
		return time.Time{}, false
	}
	if utils.DaysBetween(today, date) > maxAdvanceDays {
		utils.RespondWithError(c, http.StatusBadRequest, "Date is too far in the future")
		return time.Time{}, false
	}
	return date, true
}
