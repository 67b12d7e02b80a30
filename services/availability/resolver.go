package availability

import (
	"fmt"
	"time"

	"autodetail/models"
)

// weekdayNames maps time.Weekday to the lowercase keys used in
// models.BusinessHours. Indexed by the weekday constant, never by a
// locale-formatted name, so resolution is identical on every runtime.
var weekdayNames = [7]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// WeekdayName returns the BusinessHours key for a calendar date.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// Resolve computes the bookable time-slot list for one business on one date.
// Precedence, first match wins:
//
//  1. an explicit override supplies its slots verbatim
//  2. a special day marked closed yields no slots
//  3. a special day with custom hours yields one slot spanning them
//  4. the recurring weekly hours for the date's weekday; a weekday with no
//     hours means the business is closed that day
//
// Pure function of its inputs: no fetching, no caching, no side effects. The
// override and specialDay arguments must already be keyed to the exact
// (business, date) pair; pass nil for whichever does not exist.
func Resolve(business *models.Business, date string, override *models.AvailabilityOverride, specialDay *models.SpecialDay) (*models.ResolvedAvailability, error) {
	if business == nil {
		return nil, fmt.Errorf("%w: business is required", ErrInvalidInput)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q is not a valid ISO date", ErrInvalidInput, date)
	}

	resolved := &models.ResolvedAvailability{
		BusinessID: business.ID,
		Date:       date,
		Slots:      []models.Slot{},
	}

	if override != nil {
		resolved.Slots = override.Slots
		return resolved, nil
	}

	if specialDay != nil {
		resolved.IsSpecialDay = true
		if !specialDay.IsOpen {
			return resolved, nil
		}
		if specialDay.CustomHours != nil {
			resolved.Slots = []models.Slot{{
				StartTime: specialDay.CustomHours.Open,
				EndTime:   specialDay.CustomHours.Close,
				Available: true,
			}}
			return resolved, nil
		}
		// Open special day without custom hours falls through to the
		// recurring schedule.
		resolved.IsSpecialDay = false
	}

	hours, ok := business.BusinessHours[WeekdayName(day)]
	if !ok {
		resolved.IsClosed = true
		return resolved, nil
	}

	resolved.Slots = []models.Slot{{
		StartTime: hours.Open,
		EndTime:   hours.Close,
		Available: true,
	}}
	return resolved, nil
}
