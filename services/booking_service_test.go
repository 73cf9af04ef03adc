package services

import (
	"testing"

	"salonbook-backend/models"
	"salonbook-backend/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDay(open, close string) *models.WorkingHours {
	return &models.WorkingHours{
		DayOfWeek: 0,
		IsOpen:    true,
		OpenTime:  &open,
		CloseTime: &close,
	}
}

func TestDayGrid(t *testing.T) {
	slots, err := dayGrid(openDay("09:00", "18:00"), 60)
	require.NoError(t, err)
	require.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0].Start.String())
	assert.Equal(t, "17:00", slots[len(slots)-1].Start.String())
}

func TestDayGridClosedVariants(t *testing.T) {
	closed := &models.WorkingHours{DayOfWeek: 0, IsOpen: false}

	slots, err := dayGrid(closed, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Marked open but without times: no grid, no error.
	slots, err = dayGrid(&models.WorkingHours{DayOfWeek: 0, IsOpen: true}, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = dayGrid(nil, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// A row marked open with contradictory or malformed times degrades to
// ErrInvalidInput, which callers translate to a closed day.
func TestDayGridMalformedHours(t *testing.T) {
	_, err := dayGrid(openDay("09:00", "09:00"), 60)
	assert.ErrorIs(t, err, scheduling.ErrInvalidInput)

	_, err = dayGrid(openDay("18:00", "09:00"), 60)
	assert.ErrorIs(t, err, scheduling.ErrInvalidInput)

	_, err = dayGrid(openDay("soon", "18:00"), 60)
	assert.ErrorIs(t, err, scheduling.ErrInvalidInput)

	_, err = dayGrid(openDay("09:00", "18:00"), 0)
	assert.ErrorIs(t, err, scheduling.ErrInvalidInput)
}

func TestDayGridServiceDoesNotFit(t *testing.T) {
	slots, err := dayGrid(openDay("09:00", "10:00"), 90)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// Two clients race for the 14:00 slot on an empty day: the first write finds
// nothing occupying and goes through; the re-check of the second, run after
// the winner's row is visible, must detect the overlap. The interval of a
// different, non-adjacent booking must not trip it.
func TestConflictExistsDetectsFreshBooking(t *testing.T) {
	at := func(s string) scheduling.MinuteOfDay {
		t.Helper()
		m, err := scheduling.ParseClock(s)
		require.NoError(t, err)
		return m
	}
	requested := scheduling.Interval{Start: at("14:00"), End: at("15:00")}

	// Empty day: the first writer passes the re-check.
	assert.False(t, conflictExists(nil, requested))

	// The loser re-reads and now sees the winner's identical interval.
	assert.True(t, conflictExists([]scheduling.Interval{requested}, requested))

	// Partial overlap from a longer earlier booking also blocks.
	assert.True(t, conflictExists(
		[]scheduling.Interval{{Start: at("13:30"), End: at("14:30")}}, requested))

	// An adjacent booking ending exactly at the requested start does not.
	assert.False(t, conflictExists(
		[]scheduling.Interval{{Start: at("13:00"), End: at("14:00")}}, requested))
}

func TestOnGrid(t *testing.T) {
	slots, err := dayGrid(openDay("09:00", "18:00"), 60)
	require.NoError(t, err)

	nine, _ := scheduling.ParseClock("09:00")
	half, _ := scheduling.ParseClock("09:15")
	late, _ := scheduling.ParseClock("17:30") // would end 18:30, not on the grid

	assert.True(t, onGrid(slots, nine))
	assert.False(t, onGrid(slots, half))
	assert.False(t, onGrid(slots, late))
	assert.False(t, onGrid(nil, nine))
}
