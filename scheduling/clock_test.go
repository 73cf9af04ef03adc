package scheduling

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    MinuteOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "18:00:00", want: 1080}, // seconds from the DB are ignored
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "900", wantErr: true},
		{in: "", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinuteOfDayString(t *testing.T) {
	assert.Equal(t, "00:00", MinuteOfDay(0).String())
	assert.Equal(t, "09:05", MinuteOfDay(545).String())
	assert.Equal(t, "17:30", MinuteOfDay(1050).String())
}

func TestMinuteOfDayJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(MinuteOfDay(570))
	require.NoError(t, err)
	assert.Equal(t, `"09:30"`, string(data))

	var m MinuteOfDay
	require.NoError(t, json.Unmarshal([]byte(`"14:15"`), &m))
	assert.Equal(t, MinuteOfDay(855), m)

	assert.Error(t, json.Unmarshal([]byte(`"bad"`), &m))
}

func TestMondayWeekday(t *testing.T) {
	// 2026-08-24 is a Monday.
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		assert.Equal(t, i, MondayWeekday(monday.AddDate(0, 0, i)))
	}

	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, 6, MondayWeekday(sunday))
}
