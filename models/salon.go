package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salon types.
const (
	SalonTypeHair   = "hair_salon"
	SalonTypeNail   = "nail_salon"
	SalonTypeTattoo = "tattoo_studio"
	SalonTypeBarber = "barbershop"
	SalonTypeBeauty = "beauty_salon"
	SalonTypeSpa    = "spa"
)

type Salon struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ProviderID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Name        string `gorm:"not null"`
	Type        string `gorm:"type:varchar(30);not null"`
	Description string `gorm:"type:text"`
	Address     string `gorm:"not null"`
	City        string `gorm:"index;not null"`
	Phone       string `gorm:"not null"`
	Email       string
	ImageURL    string

	Rating       float64 `gorm:"type:decimal(3,2);default:0.0"`
	TotalReviews int     `gorm:"default:0"`
	IsActive     bool    `gorm:"default:true"`

	Services     []Service      `gorm:"foreignKey:SalonID"`
	WorkingHours []WorkingHours `gorm:"foreignKey:SalonID"`
	Bookings     []Booking      `gorm:"foreignKey:SalonID"`

	gorm.Model
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}

// ValidSalonType reports whether t is one of the known salon types.
func ValidSalonType(t string) bool {
	switch t {
	case SalonTypeHair, SalonTypeNail, SalonTypeTattoo, SalonTypeBarber, SalonTypeBeauty, SalonTypeSpa:
		return true
	}
	return false
}
