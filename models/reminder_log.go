// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records an appointment-reminder SMS so a booking is never
// reminded twice.
type ReminderLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID   uuid.UUID `gorm:"type:uuid;index;not null"`
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Message      string `gorm:"type:text"`
	Status       string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string `gorm:"type:text"`
	SentAt       time.Time

	gorm.Model
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
