package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) MinuteOfDay {
	t.Helper()
	m, err := ParseClock(s)
	require.NoError(t, err)
	return m
}

func starts(slots []Slot) []string {
	var out []string
	for _, s := range slots {
		out = append(out, s.Start.String())
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		duration int
		want     []string
		wantErr  bool
	}{
		{
			name:     "60 minute service in a 9 to 18 day",
			open:     "09:00",
			close:    "18:00",
			duration: 60,
			// last valid start is 17:00 (17:00+60 = 18:00); 17:30 would end 18:30
			want: []string{
				"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
				"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
				"15:00", "15:30", "16:00", "16:30", "17:00",
			},
		},
		{
			name:     "30 minute service fills the grid to closing",
			open:     "10:00",
			close:    "12:00",
			duration: 30,
			want:     []string{"10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "duration longer than the day yields no slots",
			open:     "09:00",
			close:    "10:00",
			duration: 90,
			want:     nil,
		},
		{
			name:     "non step multiple duration honored by the fit check",
			open:     "09:00",
			close:    "10:30",
			duration: 45,
			// 09:30+45 = 10:15 fits; 10:00+45 = 10:45 does not
			want: []string{"09:00", "09:30"},
		},
		{
			name:     "exact fit single slot",
			open:     "09:00",
			close:    "10:00",
			duration: 60,
			want:     []string{"09:00"},
		},
		{
			name:     "open equals close is invalid",
			open:     "09:00",
			close:    "09:00",
			duration: 30,
			wantErr:  true,
		},
		{
			name:     "open after close is invalid",
			open:     "18:00",
			close:    "09:00",
			duration: 30,
			wantErr:  true,
		},
		{
			name:     "non positive duration is invalid",
			open:     "09:00",
			close:    "18:00",
			duration: 0,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(mustClock(t, tt.open), mustClock(t, tt.close), tt.duration)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, slots)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, starts(slots))
			for _, s := range slots {
				assert.True(t, s.Available)
			}
		})
	}
}

// Every grid ascends strictly and every slot ends by closing time.
func TestGenerateSlotsAscendingAndFits(t *testing.T) {
	open := mustClock(t, "08:15")
	close := mustClock(t, "19:45")

	for _, duration := range []int{15, 30, 45, 60, 75, 90, 120} {
		slots, err := GenerateSlots(open, close, duration)
		require.NoError(t, err)
		require.NotEmpty(t, slots)

		for i, s := range slots {
			assert.LessOrEqual(t, int(s.Start)+duration, int(close))
			assert.Equal(t, int(s.Start)+duration, int(s.End))
			if i > 0 {
				assert.Greater(t, s.Start, slots[i-1].Start)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	iv := func(start, end string) Interval {
		t.Helper()
		return Interval{Start: mustClock(t, start), End: mustClock(t, end)}
	}

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", iv("10:00", "11:00"), iv("10:00", "11:00"), true},
		{"partial overlap", iv("10:00", "11:00"), iv("10:30", "11:30"), true},
		{"containment", iv("10:00", "12:00"), iv("10:30", "11:00"), true},
		{"adjacent before does not overlap", iv("09:00", "10:00"), iv("10:00", "11:00"), false},
		{"adjacent after does not overlap", iv("10:00", "11:00"), iv("09:00", "10:00"), false},
		{"disjoint", iv("09:00", "09:30"), iv("12:00", "13:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestMarkBooked(t *testing.T) {
	open := mustClock(t, "09:00")
	close := mustClock(t, "18:00")

	slots, err := GenerateSlots(open, close, 60)
	require.NoError(t, err)

	// Existing 60-minute booking at 10:00. A 60-minute candidate at 09:30
	// would run until 10:30 and collide; 09:00 ends exactly at 10:00 and is
	// fine, as is 11:00.
	busy := []Interval{{Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")}}

	marked := MarkBooked(slots, busy)
	require.Len(t, marked, len(slots))

	availability := map[string]bool{}
	for _, s := range marked {
		availability[s.Start.String()] = s.Available
	}

	assert.True(t, availability["09:00"])
	assert.False(t, availability["09:30"])
	assert.False(t, availability["10:00"])
	assert.False(t, availability["10:30"])
	assert.True(t, availability["11:00"])
	assert.True(t, availability["17:00"])

	// Order is untouched.
	assert.Equal(t, starts(slots), starts(marked))

	// Input slice is not mutated.
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestMarkBookedNoBusyIntervals(t *testing.T) {
	slots, err := GenerateSlots(mustClock(t, "09:00"), mustClock(t, "18:00"), 60)
	require.NoError(t, err)

	marked := MarkBooked(slots, nil)
	assert.Equal(t, slots, marked)
	assert.Len(t, FreeSlots(marked), len(slots))
}

// Recomputing from identical inputs yields identical output.
func TestSlotGridIdempotent(t *testing.T) {
	open := mustClock(t, "09:00")
	close := mustClock(t, "17:30")
	busy := []Interval{
		{Start: mustClock(t, "11:00"), End: mustClock(t, "12:30")},
		{Start: mustClock(t, "15:00"), End: mustClock(t, "15:45")},
	}

	first, err := GenerateSlots(open, close, 45)
	require.NoError(t, err)
	second, err := GenerateSlots(open, close, 45)
	require.NoError(t, err)

	assert.Equal(t, MarkBooked(first, busy), MarkBooked(second, busy))
}

func TestFreeSlots(t *testing.T) {
	slots := []Slot{
		{Start: 540, End: 600, Available: true},
		{Start: 570, End: 630, Available: false},
		{Start: 600, End: 660, Available: true},
	}

	free := FreeSlots(slots)
	require.Len(t, free, 2)
	assert.Equal(t, MinuteOfDay(540), free[0].Start)
	assert.Equal(t, MinuteOfDay(600), free[1].Start)
}
