package models

import (
	"errors"

	"salonbook-backend/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingHours holds one salon's open/close times for one weekday.
// DayOfWeek is Monday-first (0=Monday .. 6=Sunday); OpenTime/CloseTime are
// "HH:MM" strings and only meaningful while IsOpen is true. A missing row for
// a weekday means the salon is closed that day.
type WorkingHours struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index:idx_salon_day,unique;not null"`

	DayOfWeek int     `gorm:"index:idx_salon_day,unique;not null" json:"day_of_week"`
	IsOpen    bool    `gorm:"default:false" json:"is_open"`
	OpenTime  *string `gorm:"type:varchar(5)" json:"open_time"`
	CloseTime *string `gorm:"type:varchar(5)" json:"close_time"`

	gorm.Model
}

func (w *WorkingHours) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}

// Validate checks the open-day invariant: both times present and open < close.
func (w *WorkingHours) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return errors.New("day_of_week must be 0 (Monday) through 6 (Sunday)")
	}
	if !w.IsOpen {
		return nil
	}
	if w.OpenTime == nil || w.CloseTime == nil {
		return errors.New("open days require both open_time and close_time")
	}
	open, err := scheduling.ParseClock(*w.OpenTime)
	if err != nil {
		return err
	}
	close, err := scheduling.ParseClock(*w.CloseTime)
	if err != nil {
		return err
	}
	if open >= close {
		return errors.New("close_time must be after open_time")
	}
	return nil
}
