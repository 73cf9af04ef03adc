package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.August, date.Month())
	assert.Equal(t, 28, date.Day())

	_, err = ParseDate("28.08.2026")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 8, 1, 23, 50, 0, 0, time.Local)
	end := time.Date(2026, 8, 4, 0, 10, 0, 0, time.Local)

	// Clock times are irrelevant, only calendar days count.
	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, -3, DaysBetween(end, start))
	assert.Equal(t, 0, DaysBetween(start, start))
}

// A spring-forward transition makes one local day 23 hours long; the count
// must still be whole calendar days.
func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// DST starts 2026-03-08 in this zone.
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, loc)

	require.Equal(t, 30, DaysBetween(start, end))
	assert.Equal(t, 1, DaysBetween(
		time.Date(2026, 3, 8, 0, 0, 0, 0, loc),
		time.Date(2026, 3, 9, 0, 0, 0, 0, loc)))
}
