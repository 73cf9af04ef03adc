// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/scheduling"
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrSlotConflict means the requested interval was taken between the
	// client's availability read and the write.
	ErrSlotConflict = errors.New("slot already booked")

	// ErrUnknownService means the service does not exist (or is inactive)
	// for the salon; availability cannot be computed without its duration.
	ErrUnknownService = errors.New("unknown service")

	// ErrBadTransition means the requested status change is not allowed by
	// the booking state machine.
	ErrBadTransition = errors.New("invalid status transition")
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// DayAvailability computes the slot grid for a salon, date and service.
// Closed days (missing row, is_open=false, or malformed hours) yield an empty
// grid, not an error.
func (s *BookingService) DayAvailability(salonID, serviceID uuid.UUID, date time.Time) ([]scheduling.Slot, error) {
	var service models.Service
	if err := s.db.Where("salon_id = ? AND id = ? AND is_active = ?", salonID, serviceID, true).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownService
		}
		return nil, err
	}

	var hours models.WorkingHours
	err := s.db.Where("salon_id = ? AND day_of_week = ?", salonID, scheduling.MondayWeekday(date)).
		First(&hours).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // no hours configured, treated as closed
	}
	if err != nil {
		return nil, err
	}

	slots, err := dayGrid(&hours, service.DurationMinutes)
	if err != nil {
		// Contradictory hours degrade to a closed day rather than failing
		// the request.
		if errors.Is(err, scheduling.ErrInvalidInput) {
			return nil, nil
		}
		return nil, err
	}
	if len(slots) == 0 {
		return nil, nil
	}

	busy, err := s.occupiedIntervals(s.db, salonID, date.Format(utils.DateLayout), false)
	if err != nil {
		return nil, err
	}

	return scheduling.MarkBooked(slots, busy), nil
}

// CreateBooking inserts a pending booking after re-verifying, inside the same
// transaction as the insert, that no occupying booking overlaps the requested
// interval. The salon row is locked FOR UPDATE first, so booking writes for
// one salon serialize even when the day has no rows to lock yet; the loser
// then sees the winner's fresh insert in the re-check and gets
// ErrSlotConflict.
func (s *BookingService) CreateBooking(clientID, salonID, serviceID uuid.UUID, date time.Time, start scheduling.MinuteOfDay, notes string) (*models.Booking, error) {
	var service models.Service
	if err := s.db.Where("salon_id = ? AND id = ? AND is_active = ?", salonID, serviceID, true).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownService
		}
		return nil, err
	}

	// The requested start must be one of the day's candidate slots.
	var hours models.WorkingHours
	err := s.db.Where("salon_id = ? AND day_of_week = ?", salonID, scheduling.MondayWeekday(date)).
		First(&hours).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("salon is closed on the requested date")
	}
	if err != nil {
		return nil, err
	}
	slots, err := dayGrid(&hours, service.DurationMinutes)
	if err != nil || !onGrid(slots, start) {
		return nil, fmt.Errorf("requested time is outside working hours")
	}

	dateStr := date.Format(utils.DateLayout)
	requested := scheduling.Interval{Start: start, End: start + scheduling.MinuteOfDay(service.DurationMinutes)}

	booking := models.Booking{
		ClientID:        clientID,
		SalonID:         salonID,
		ServiceID:       serviceID,
		AppointmentDate: dateStr,
		AppointmentTime: start.String(),
		Status:          models.StatusPending,
		Notes:           notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Row locks on bookings alone cannot serialize two inserts into an
		// empty day, so take the salon row lock as the per-salon write mutex.
		var lockedSalon models.Salon
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&lockedSalon, "id = ?", salonID).Error; err != nil {
			return err
		}

		busy, err := s.occupiedIntervals(tx, salonID, dateStr, true)
		if err != nil {
			return err
		}
		if conflictExists(busy, requested) {
			return ErrSlotConflict
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus applies a state-machine-checked status change.
func (s *BookingService) UpdateStatus(bookingID uuid.UUID, to models.BookingStatus) (*models.Booking, error) {
	if !to.Valid() {
		return nil, ErrBadTransition
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if !booking.Status.CanTransitionTo(to) {
			return ErrBadTransition
		}
		booking.Status = to
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// occupiedIntervals loads the pending/confirmed bookings for salon+date and
// resolves each one's interval from its own service's duration. With lock set
// the booking rows are read FOR UPDATE, which only makes sense inside a
// transaction.
func (s *BookingService) occupiedIntervals(tx *gorm.DB, salonID uuid.UUID, date string, lock bool) ([]scheduling.Interval, error) {
	q := tx
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var bookings []models.Booking
	if err := q.Where("salon_id = ? AND appointment_date = ? AND status IN ?",
		salonID, date, models.OccupyingStatuses).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}

	serviceIDs := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		serviceIDs = append(serviceIDs, b.ServiceID)
	}
	var svcs []models.Service
	if err := tx.Where("id IN ?", serviceIDs).Find(&svcs).Error; err != nil {
		return nil, err
	}
	durations := make(map[uuid.UUID]int, len(svcs))
	for _, svc := range svcs {
		durations[svc.ID] = svc.DurationMinutes
	}

	intervals := make([]scheduling.Interval, 0, len(bookings))
	for _, b := range bookings {
		start, err := scheduling.ParseClock(b.AppointmentTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s has malformed time: %w", b.ID, err)
		}
		duration, ok := durations[b.ServiceID]
		if !ok || duration <= 0 {
			duration = scheduling.DefaultStepMinutes
		}
		intervals = append(intervals, scheduling.Interval{
			Start: start,
			End:   start + scheduling.MinuteOfDay(duration),
		})
	}
	return intervals, nil
}

// dayGrid turns one working-hours row into candidate slots for a service
// duration. Returns scheduling.ErrInvalidInput when the row is marked open but
// its times are missing or contradictory.
func dayGrid(hours *models.WorkingHours, durationMinutes int) ([]scheduling.Slot, error) {
	if hours == nil || !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return nil, nil
	}
	open, err := scheduling.ParseClock(*hours.OpenTime)
	if err != nil {
		return nil, scheduling.ErrInvalidInput
	}
	close, err := scheduling.ParseClock(*hours.CloseTime)
	if err != nil {
		return nil, scheduling.ErrInvalidInput
	}
	return scheduling.GenerateSlots(open, close, durationMinutes)
}

// conflictExists is the write-time re-check: true when the requested interval
// overlaps any freshly-read occupying interval.
func conflictExists(busy []scheduling.Interval, requested scheduling.Interval) bool {
	for _, b := range busy {
		if scheduling.Overlaps(requested, b) {
			return true
		}
	}
	return false
}

func onGrid(slots []scheduling.Slot, start scheduling.MinuteOfDay) bool {
	for _, s := range slots {
		if s.Start == start {
			return true
		}
	}
	return false
}
