package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is a closed enumeration; anything outside these five values is
// rejected at the boundary.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
)

// bookingTransitions lists the allowed status moves. completed, cancelled and
// rejected are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Occupies reports whether a booking in this status blocks its time interval.
// Cancelled, rejected and completed bookings free their slot.
func (s BookingStatus) Occupies() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	case StatusCompleted, StatusCancelled, StatusRejected:
		return false
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// CanTransitionTo reports whether the status move s -> to is allowed.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// OccupyingStatuses is the status filter used when fetching bookings that
// block slots.
var OccupyingStatuses = []BookingStatus{StatusPending, StatusConfirmed}

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null"`
	SalonID   uuid.UUID `gorm:"type:uuid;index:idx_salon_date;not null"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	AppointmentDate string        `gorm:"type:varchar(10);index:idx_salon_date;not null"` // YYYY-MM-DD
	AppointmentTime string        `gorm:"type:varchar(5);not null"`                       // HH:MM
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes           string        `gorm:"type:varchar(500)"`

	Client  User    `gorm:"foreignKey:ClientID"`
	Salon   Salon   `gorm:"foreignKey:SalonID"`
	Service Service `gorm:"foreignKey:ServiceID"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
