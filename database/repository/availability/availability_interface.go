package availabilityRepo

import "autodetail/models"

// AvailabilityRepository stores per-date schedule exceptions: explicit
// overrides and special days, both keyed by (businessID, date).
type AvailabilityRepository interface {
	// GetOverride fetches the override for the exact (businessID, date) pair;
	// nil when the date has no override.
	GetOverride(businessID, date string) (*models.AvailabilityOverride, error)
	// UpsertOverride creates or replaces the override for its (businessID, date).
	UpsertOverride(override *models.AvailabilityOverride) error
	// DeleteOverride reverts the date to its default schedule.
	DeleteOverride(businessID, date string) error
	// ListOverrides returns all overrides for a business.
	ListOverrides(businessID string) ([]models.AvailabilityOverride, error)

	// GetSpecialDay fetches the special day for the exact (businessID, date)
	// pair; nil when the date is not special.
	GetSpecialDay(businessID, date string) (*models.SpecialDay, error)
	// UpsertSpecialDay creates or replaces the special day for its (businessID, date).
	UpsertSpecialDay(day *models.SpecialDay) error
	// DeleteSpecialDay removes the special-day marking.
	DeleteSpecialDay(businessID, date string) error
	// ListSpecialDays returns all special days for a business.
	ListSpecialDays(businessID string) ([]models.SpecialDay, error)
}
