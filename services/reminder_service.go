// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &ReminderService{
		db:     db,
		client: client,
		from:   os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", func() {
		s.SendAppointmentReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendAppointmentReminders texts every client with a confirmed booking
// tomorrow, once per booking.
func (s *ReminderService) SendAppointmentReminders() {
	if s.client == nil {
		log.Println("Twilio not configured, skipping reminders")
		return
	}

	log.Println("Starting appointment reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	var bookings []models.Booking
	if err := s.db.Preload("Client").Preload("Salon").Preload("Service").
		Where("appointment_date = ? AND status = ?", tomorrow, models.StatusConfirmed).
		Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	sent := 0
	for _, booking := range bookings {
		if s.alreadyReminded(booking.ID) {
			continue
		}
		if booking.Client.Phone == "" {
			continue
		}

		message := fmt.Sprintf("Reminder: %s at %s tomorrow (%s) at %s.",
			booking.Service.Name, booking.Salon.Name,
			booking.AppointmentDate, booking.AppointmentTime)

		logEntry := models.ReminderLog{
			SalonID:   booking.SalonID,
			BookingID: booking.ID,
			Message:   message,
			SentAt:    time.Now(),
		}

		if err := s.sendSMS(booking.Client.Phone, message); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.ID, err)
			logEntry.Status = "failed"
			logEntry.ErrorMessage = err.Error()
		} else {
			logEntry.Status = "sent"
			sent++
		}

		if err := s.db.Create(&logEntry).Error; err != nil {
			log.Printf("Failed to record reminder log: %v", err)
		}
	}

	log.Printf("Appointment reminders done: %d sent, %d bookings checked", sent, len(bookings))
}

func (s *ReminderService) alreadyReminded(bookingID uuid.UUID) bool {
	var count int64
	s.db.Model(&models.ReminderLog{}).
		Where("booking_id = ? AND status = ?", bookingID, "sent").
		Count(&count)
	return count > 0
}

func (s *ReminderService) sendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
