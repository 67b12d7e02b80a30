package business

import (
	"fmt"
	"regexp"

	"autodetail/models"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ValidateBusinessHours checks weekday keys and that each day's open precedes
// its close. Zero-padded "HH:MM" strings compare lexicographically in
// chronological order, so plain string comparison is enough.
func ValidateBusinessHours(hours models.BusinessHours) error {
	for day, h := range hours {
		if !validWeekdays[day] {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidHours, day)
		}
		if err := validateDayHours(h); err != nil {
			return fmt.Errorf("%w on %s", err, day)
		}
	}
	return nil
}

func validateDayHours(h models.DayHours) error {
	if !clockPattern.MatchString(h.Open) || !clockPattern.MatchString(h.Close) {
		return fmt.Errorf("%w: times must be HH:MM", ErrInvalidHours)
	}
	if h.Open >= h.Close {
		return fmt.Errorf("%w: open %s must precede close %s", ErrInvalidHours, h.Open, h.Close)
	}
	return nil
}

// ValidateSlots checks an override's explicit slot list.
func ValidateSlots(slots []models.Slot) error {
	for _, s := range slots {
		if !clockPattern.MatchString(s.StartTime) || !clockPattern.MatchString(s.EndTime) {
			return fmt.Errorf("%w: slot times must be HH:MM", ErrInvalidHours)
		}
		if s.StartTime >= s.EndTime {
			return fmt.Errorf("%w: slot start %s must precede end %s", ErrInvalidHours, s.StartTime, s.EndTime)
		}
	}
	return nil
}

// ValidateSpecialDay checks a special day's custom hours when present.
func ValidateSpecialDay(day models.SpecialDay) error {
	if !day.IsOpen {
		return nil
	}
	if day.CustomHours != nil {
		return validateDayHours(*day.CustomHours)
	}
	return nil
}
