package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time and date formats used on the wire.
const (
	ClockFormat = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
)

// MinuteOfDay is a local wall-clock time expressed as minutes since midnight.
// All slot arithmetic happens on this type; no time zones, no dates.
type MinuteOfDay int

// ParseClock parses "HH:MM" (seconds, if present, are ignored) into a MinuteOfDay.
func ParseClock(s string) (MinuteOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %q", s)
	}

	return MinuteOfDay(hour*60 + minute), nil
}

// String formats the time back to "HH:MM".
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// MarshalJSON renders the time as "HH:MM", the format the API speaks.
func (m MinuteOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts "HH:MM".
func (m *MinuteOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MondayWeekday converts Go's Sunday-first weekday to the Monday-first index
// (0=Monday .. 6=Sunday) that working-hours rows are keyed by. This is the only
// place the conversion happens.
func MondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
