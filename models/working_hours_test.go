package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestWorkingHoursValidate(t *testing.T) {
	tests := []struct {
		name    string
		hours   WorkingHours
		wantErr bool
	}{
		{
			name:  "closed day needs no times",
			hours: WorkingHours{DayOfWeek: 0, IsOpen: false},
		},
		{
			name:  "open day with valid times",
			hours: WorkingHours{DayOfWeek: 2, IsOpen: true, OpenTime: strPtr("09:00"), CloseTime: strPtr("18:00")},
		},
		{
			name:    "open day missing close time",
			hours:   WorkingHours{DayOfWeek: 1, IsOpen: true, OpenTime: strPtr("09:00")},
			wantErr: true,
		},
		{
			name:    "open day missing both times",
			hours:   WorkingHours{DayOfWeek: 1, IsOpen: true},
			wantErr: true,
		},
		{
			name:    "open equals close",
			hours:   WorkingHours{DayOfWeek: 3, IsOpen: true, OpenTime: strPtr("09:00"), CloseTime: strPtr("09:00")},
			wantErr: true,
		},
		{
			name:    "open after close",
			hours:   WorkingHours{DayOfWeek: 3, IsOpen: true, OpenTime: strPtr("18:00"), CloseTime: strPtr("09:00")},
			wantErr: true,
		},
		{
			name:    "malformed time",
			hours:   WorkingHours{DayOfWeek: 4, IsOpen: true, OpenTime: strPtr("late"), CloseTime: strPtr("18:00")},
			wantErr: true,
		},
		{
			name:    "day of week out of range",
			hours:   WorkingHours{DayOfWeek: 7, IsOpen: false},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
