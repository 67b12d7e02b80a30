package availability

import (
	"fmt"
	"time"

	appointmentRepo "autodetail/database/repository/appointment"
	availabilityRepo "autodetail/database/repository/availability"
	businessRepo "autodetail/database/repository/business"
	"autodetail/models"
)

// AvailabilityService resolves bookable availability for a business.
type AvailabilityService interface {
	// ResolveDate fetches the business, override and special-day records for
	// the (businessID, date) pair and resolves them.
	ResolveDate(businessID, date string) (*models.ResolvedAvailability, error)
	// ResolveRange resolves a span of consecutive dates for the calendar view.
	ResolveRange(businessID, startDate string, days int) ([]models.ResolvedAvailability, error)
	// BookableSlots subdivides the resolved windows into slots of the given
	// duration, marking those taken by existing appointments unavailable.
	BookableSlots(businessID, date string, durationMinutes int) (*models.ResolvedAvailability, error)
}

// DefaultAvailabilityService is the production implementation. Repositories
// are injected; the service holds no ambient clients and no cache, so every
// call re-fetches and recomputes.
type DefaultAvailabilityService struct {
	BusinessRepo     businessRepo.BusinessRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	AppointmentRepo  appointmentRepo.AppointmentRepository
}

// ResolveDate fetches the three inputs for one date and resolves them.
func (s *DefaultAvailabilityService) ResolveDate(businessID, date string) (*models.ResolvedAvailability, error) {
	business, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("availability: failed to fetch business %s: %w", businessID, err)
	}
	if business == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, businessID)
	}
	override, err := s.AvailabilityRepo.GetOverride(businessID, date)
	if err != nil {
		return nil, fmt.Errorf("availability: failed to fetch override: %w", err)
	}
	specialDay, err := s.AvailabilityRepo.GetSpecialDay(businessID, date)
	if err != nil {
		return nil, fmt.Errorf("availability: failed to fetch special day: %w", err)
	}
	return Resolve(business, date, override, specialDay)
}

// ResolveRange resolves each date in [startDate, startDate+days).
func (s *DefaultAvailabilityService) ResolveRange(businessID, startDate string, days int) ([]models.ResolvedAvailability, error) {
	if days <= 0 || days > 62 {
		return nil, fmt.Errorf("%w: days must be between 1 and 62", ErrInvalidInput)
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q is not a valid ISO date", ErrInvalidInput, startDate)
	}

	business, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("availability: failed to fetch business %s: %w", businessID, err)
	}
	if business == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, businessID)
	}

	// A fetch failure fails the whole range. Silently dropping a date would
	// make the calendar disagree with ResolveDate for the same day.
	results := make([]models.ResolvedAvailability, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")

		override, err := s.AvailabilityRepo.GetOverride(businessID, date)
		if err != nil {
			return nil, fmt.Errorf("availability: failed to fetch override for %s: %w", date, err)
		}
		specialDay, err := s.AvailabilityRepo.GetSpecialDay(businessID, date)
		if err != nil {
			return nil, fmt.Errorf("availability: failed to fetch special day for %s: %w", date, err)
		}

		resolved, err := Resolve(business, date, override, specialDay)
		if err != nil {
			return nil, err
		}
		results = append(results, *resolved)
	}
	return results, nil
}

// BookableSlots resolves the date and cuts each available window into
// duration-sized slots, marking those that collide with a non-cancelled
// appointment as unavailable.
func (s *DefaultAvailabilityService) BookableSlots(businessID, date string, durationMinutes int) (*models.ResolvedAvailability, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	resolved, err := s.ResolveDate(businessID, date)
	if err != nil {
		return nil, err
	}
	if resolved.IsClosed || len(resolved.Slots) == 0 {
		return resolved, nil
	}

	appts, err := s.AppointmentRepo.ListByBusinessAndDate(businessID, date)
	if err != nil {
		return nil, fmt.Errorf("availability: failed to fetch appointments: %w", err)
	}

	resolved.Slots = SubdivideSlots(resolved.Slots, durationMinutes, appts)
	return resolved, nil
}

// SubdivideSlots cuts windows into fixed-duration slots and flags conflicts.
func SubdivideSlots(windows []models.Slot, durationMinutes int, appts []models.Appointment) []models.Slot {
	var out []models.Slot
	for _, w := range windows {
		start, err1 := ParseClock(w.StartTime)
		end, err2 := ParseClock(w.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		for t := start; t+durationMinutes <= end; t += durationMinutes {
			slot := models.Slot{
				StartTime: FormatClock(t),
				EndTime:   FormatClock(t + durationMinutes),
				Available: w.Available && !overlapsAny(t, t+durationMinutes, appts),
			}
			out = append(out, slot)
		}
	}
	return out
}

func overlapsAny(start, end int, appts []models.Appointment) bool {
	for _, a := range appts {
		if a.Status == models.AppointmentCancelled {
			continue
		}
		aStart, err1 := ParseClock(a.StartTime)
		aEnd, err2 := ParseClock(a.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if start < aEnd && end > aStart {
			return true
		}
	}
	return false
}

// ParseClock converts a zero-padded "HH:MM" string to minutes from midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q is not a valid HH:MM clock", ErrInvalidInput, clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes from midnight to a zero-padded "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
