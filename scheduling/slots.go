// Package scheduling computes appointment slot grids. It is pure: callers load
// working hours and existing bookings, this package turns them into candidate
// start times and availability flags. Nothing here touches the database or the
// wall clock.
package scheduling

import "errors"

// DefaultStepMinutes is the slot granularity. Every candidate start time falls
// on a 30-minute boundary counted from opening time.
const DefaultStepMinutes = 30

// ErrInvalidInput reports contradictory slot inputs (open >= close, or a
// non-positive duration). Callers typically degrade to "closed day" rather
// than surfacing it.
var ErrInvalidInput = errors.New("scheduling: invalid input")

// Slot is a candidate appointment start. The slot spans
// [Start, Start+duration) for the duration the grid was generated with.
type Slot struct {
	Start     MinuteOfDay `json:"start"`
	End       MinuteOfDay `json:"end"`
	Available bool        `json:"available"`
}

// Interval is an occupied time range [Start, End), typically an existing
// booking's start time plus that booking's own service duration.
type Interval struct {
	Start MinuteOfDay
	End   MinuteOfDay
}

// Overlaps reports whether two half-open intervals intersect. Adjacent
// intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// GenerateSlots returns every candidate start time between open and close at
// DefaultStepMinutes granularity, such that a service of durationMinutes ends
// no later than close. Starts ascend strictly; all slots come back Available.
//
// The result is empty (not an error) when the service cannot fit into the day.
func GenerateSlots(open, close MinuteOfDay, durationMinutes int) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidInput
	}
	if open >= close {
		return nil, ErrInvalidInput
	}

	duration := MinuteOfDay(durationMinutes)

	var slots []Slot
	for cursor := open; cursor+duration <= close; cursor += DefaultStepMinutes {
		slots = append(slots, Slot{
			Start:     cursor,
			End:       cursor + duration,
			Available: true,
		})
	}
	return slots, nil
}

// MarkBooked tags each slot unavailable if its interval overlaps any busy
// interval. Order is preserved; the input slice is not modified.
//
// Busy intervals must already be occupying ones (bookings in pending or
// confirmed status). Status filtering happens upstream, where the bookings
// are fetched.
func MarkBooked(slots []Slot, busy []Interval) []Slot {
	marked := make([]Slot, len(slots))
	for i, s := range slots {
		marked[i] = s
		marked[i].Available = s.Available && !overlapsAny(Interval{Start: s.Start, End: s.End}, busy)
	}
	return marked
}

func overlapsAny(slot Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(slot, b) {
			return true
		}
	}
	return false
}

// FreeSlots filters a marked grid down to the available entries.
func FreeSlots(slots []Slot) []Slot {
	var free []Slot
	for _, s := range slots {
		if s.Available {
			free = append(free, s)
		}
	}
	return free
}
