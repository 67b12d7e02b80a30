package business

import (
	"testing"

	"autodetail/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateBusinessHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   models.BusinessHours
		wantErr bool
	}{
		{
			name:  "typical week",
			hours: models.BusinessHours{"monday": {Open: "09:00", Close: "17:00"}, "saturday": {Open: "10:00", Close: "14:00"}},
		},
		{
			name:  "empty means always closed",
			hours: models.BusinessHours{},
		},
		{
			name:    "unknown weekday key",
			hours:   models.BusinessHours{"Monday": {Open: "09:00", Close: "17:00"}},
			wantErr: true,
		},
		{
			name:    "open after close",
			hours:   models.BusinessHours{"monday": {Open: "18:00", Close: "09:00"}},
			wantErr: true,
		},
		{
			name:    "open equals close",
			hours:   models.BusinessHours{"monday": {Open: "09:00", Close: "09:00"}},
			wantErr: true,
		},
		{
			name:    "unpadded time",
			hours:   models.BusinessHours{"monday": {Open: "9:00", Close: "17:00"}},
			wantErr: true,
		},
		{
			name:    "hour out of range",
			hours:   models.BusinessHours{"monday": {Open: "09:00", Close: "25:00"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBusinessHours(tt.hours)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSlots(t *testing.T) {
	good := []models.Slot{
		{StartTime: "09:00", EndTime: "10:00", Available: true},
		{StartTime: "14:30", EndTime: "16:00", Available: true},
	}
	assert.NoError(t, ValidateSlots(good))

	bad := []models.Slot{{StartTime: "10:00", EndTime: "10:00"}}
	assert.ErrorIs(t, ValidateSlots(bad), ErrInvalidHours)
}

func TestValidateSpecialDay(t *testing.T) {
	closed := models.SpecialDay{IsOpen: false}
	assert.NoError(t, ValidateSpecialDay(closed))

	custom := models.SpecialDay{IsOpen: true, CustomHours: &models.DayHours{Open: "12:00", Close: "15:00"}}
	assert.NoError(t, ValidateSpecialDay(custom))

	inverted := models.SpecialDay{IsOpen: true, CustomHours: &models.DayHours{Open: "15:00", Close: "12:00"}}
	assert.ErrorIs(t, ValidateSpecialDay(inverted), ErrInvalidHours)
}
