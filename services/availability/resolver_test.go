package availability

import (
	"testing"
	"time"

	"autodetail/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayBusiness(hours models.BusinessHours) *models.Business {
	return &models.Business{ID: "biz-1", BusinessHours: hours}
}

func mondayToFriday() models.BusinessHours {
	return models.BusinessHours{
		"monday": {Open: "09:00", Close: "17:00"},
	}
}

func TestResolveRecurringHours(t *testing.T) {
	// 2025-06-02 is a Monday.
	res, err := Resolve(weekdayBusiness(mondayToFriday()), "2025-06-02", nil, nil)
	require.NoError(t, err)

	assert.False(t, res.IsClosed)
	assert.False(t, res.IsSpecialDay)
	require.Len(t, res.Slots, 1)
	assert.Equal(t, models.Slot{StartTime: "09:00", EndTime: "17:00", Available: true}, res.Slots[0])
}

func TestResolveClosedWeekday(t *testing.T) {
	// 2025-06-01 is a Sunday, which has no defined hours.
	res, err := Resolve(weekdayBusiness(mondayToFriday()), "2025-06-01", nil, nil)
	require.NoError(t, err)

	assert.True(t, res.IsClosed)
	assert.False(t, res.IsSpecialDay)
	assert.Empty(t, res.Slots)
}

func TestResolveOverrideWins(t *testing.T) {
	override := &models.AvailabilityOverride{
		BusinessID: "biz-1",
		Date:       "2025-06-01",
		Slots: []models.Slot{
			{StartTime: "10:00", EndTime: "12:00", Available: true},
		},
	}
	// Special day and recurring hours both present; the override must win,
	// even on a Sunday that would otherwise be closed.
	special := &models.SpecialDay{BusinessID: "biz-1", Date: "2025-06-01", IsOpen: false}

	res, err := Resolve(weekdayBusiness(mondayToFriday()), "2025-06-01", override, special)
	require.NoError(t, err)

	assert.False(t, res.IsSpecialDay)
	assert.Equal(t, override.Slots, res.Slots)
}

func TestResolveSpecialDayClosed(t *testing.T) {
	special := &models.SpecialDay{BusinessID: "biz-1", Date: "2025-06-02", IsOpen: false}

	// Monday has defined hours, but the special day closes it.
	res, err := Resolve(weekdayBusiness(mondayToFriday()), "2025-06-02", nil, special)
	require.NoError(t, err)

	assert.True(t, res.IsSpecialDay)
	assert.Empty(t, res.Slots)
}

func TestResolveSpecialDayCustomHours(t *testing.T) {
	special := &models.SpecialDay{
		BusinessID:  "biz-1",
		Date:        "2025-06-02",
		IsOpen:      true,
		CustomHours: &models.DayHours{Open: "12:00", Close: "15:00"},
	}

	res, err := Resolve(weekdayBusiness(mondayToFriday()), "2025-06-02", nil, special)
	require.NoError(t, err)

	assert.True(t, res.IsSpecialDay)
	require.Len(t, res.Slots, 1)
	assert.Equal(t, models.Slot{StartTime: "12:00", EndTime: "15:00", Available: true}, res.Slots[0])
}

func TestResolveOpenSpecialDayWithoutCustomHoursUsesRecurring(t *testing.T) {
	special := &models.SpecialDay{BusinessID: "biz-1", Date: "2025-06-02", IsOpen: true}

	res, err := Resolve(weekdayBusiness(mondayToFriday()), "2025-06-02", nil, special)
	require.NoError(t, err)

	assert.False(t, res.IsSpecialDay)
	require.Len(t, res.Slots, 1)
	assert.Equal(t, "09:00", res.Slots[0].StartTime)
}

func TestResolveInvalidDate(t *testing.T) {
	for _, date := range []string{"", "not-a-date", "2025-13-40", "06/02/2025"} {
		_, err := Resolve(weekdayBusiness(mondayToFriday()), date, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidInput, "date %q", date)
	}
}

func TestResolveNilBusiness(t *testing.T) {
	_, err := Resolve(nil, "2025-06-02", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveNoHoursAtAll(t *testing.T) {
	res, err := Resolve(&models.Business{ID: "biz-1"}, "2025-06-02", nil, nil)
	require.NoError(t, err)
	assert.True(t, res.IsClosed)
	assert.Empty(t, res.Slots)
}

func TestWeekdayNameIsLocaleIndependent(t *testing.T) {
	// Every weekday maps through the fixed enumeration, not formatting.
	for d := 0; d < 7; d++ {
		day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		assert.Equal(t, weekdayNames[day.Weekday()], WeekdayName(day))
	}
	assert.Equal(t, "sunday", WeekdayName(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "monday", WeekdayName(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
}
