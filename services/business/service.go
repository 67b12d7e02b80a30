package business

import (
	"fmt"
	"time"

	"autodetail/models"
	"autodetail/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requireOwnership fetches the business and verifies the caller owns it.
func (s *DefaultBusinessService) requireOwnership(ownerID, businessID string) (*models.Business, error) {
	biz, err := s.Repo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("business: failed to fetch %s: %w", businessID, err)
	}
	if biz == nil {
		return nil, ErrNotFound
	}
	if biz.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return biz, nil
}

// CreateBusiness creates the owner's business profile. One profile per owner.
func (s *DefaultBusinessService) CreateBusiness(ownerID string, biz models.Business) (*models.Business, error) {
	existing, err := s.Repo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("business: failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}
	if biz.BusinessHours != nil {
		if err := ValidateBusinessHours(biz.BusinessHours); err != nil {
			return nil, err
		}
	}

	biz.ID = uuid.New().String()
	biz.OwnerID = ownerID
	biz.Active = true
	for i := range biz.Services {
		if biz.Services[i].ID == "" {
			biz.Services[i].ID = uuid.New().String()
		}
	}

	if err := s.Repo.Create(&biz); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("business created",
		zap.String("businessID", biz.ID), zap.String("ownerID", ownerID))
	return &biz, nil
}

// GetBusinessByID retrieves a business profile.
func (s *DefaultBusinessService) GetBusinessByID(id string) (*models.Business, error) {
	return s.Repo.GetByID(id)
}

// GetBusinessByOwner retrieves the caller's business profile.
func (s *DefaultBusinessService) GetBusinessByOwner(ownerID string) (*models.Business, error) {
	return s.Repo.GetByOwnerID(ownerID)
}

// ListBusinesses returns active businesses, optionally filtered by city.
func (s *DefaultBusinessService) ListBusinesses(city string) ([]models.Business, error) {
	return s.Repo.List(city)
}

// UpdateBusiness merges the requested changes into the stored profile after
// an ownership check. Unset fields keep their current values; a partial
// PATCH must never wipe hours, services or the active flag.
func (s *DefaultBusinessService) UpdateBusiness(ownerID string, req models.BusinessUpdateRequest) (*models.Business, error) {
	current, err := s.requireOwnership(ownerID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.City != nil {
		current.City = *req.City
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Services != nil {
		for i := range req.Services {
			if req.Services[i].ID == "" {
				req.Services[i].ID = uuid.New().String()
			}
		}
		current.Services = req.Services
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	if err := s.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

// DeleteBusiness removes the profile after an ownership check.
func (s *DefaultBusinessService) DeleteBusiness(ownerID, businessID string) error {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return err
	}
	return s.Repo.Delete(businessID)
}

// SetBusinessHours replaces the recurring weekly hours.
func (s *DefaultBusinessService) SetBusinessHours(ownerID, businessID string, hours models.BusinessHours) error {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return err
	}
	if err := ValidateBusinessHours(hours); err != nil {
		return err
	}
	return s.Repo.SetBusinessHours(businessID, hours)
}

// SetOverride writes an explicit slot list for one date.
func (s *DefaultBusinessService) SetOverride(ownerID, businessID, date string, slots []models.Slot) (*models.AvailabilityOverride, error) {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date %q is not a valid ISO date", ErrInvalidHours, date)
	}
	if err := ValidateSlots(slots); err != nil {
		return nil, err
	}

	override := &models.AvailabilityOverride{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Date:       date,
		Slots:      slots,
	}
	if err := s.AvailabilityRepo.UpsertOverride(override); err != nil {
		return nil, err
	}
	return override, nil
}

// DeleteOverride reverts a date to its default schedule.
func (s *DefaultBusinessService) DeleteOverride(ownerID, businessID, date string) error {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return err
	}
	return s.AvailabilityRepo.DeleteOverride(businessID, date)
}

// ListOverrides returns the business's explicit per-date schedules.
func (s *DefaultBusinessService) ListOverrides(ownerID, businessID string) ([]models.AvailabilityOverride, error) {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return nil, err
	}
	return s.AvailabilityRepo.ListOverrides(businessID)
}

// SetSpecialDay marks a date closed or open with custom hours.
func (s *DefaultBusinessService) SetSpecialDay(ownerID, businessID string, day models.SpecialDay) (*models.SpecialDay, error) {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", day.Date); err != nil {
		return nil, fmt.Errorf("%w: date %q is not a valid ISO date", ErrInvalidHours, day.Date)
	}
	if err := ValidateSpecialDay(day); err != nil {
		return nil, err
	}

	day.ID = uuid.New().String()
	day.BusinessID = businessID
	if err := s.AvailabilityRepo.UpsertSpecialDay(&day); err != nil {
		return nil, err
	}
	return &day, nil
}

// DeleteSpecialDay removes a special-day marking.
func (s *DefaultBusinessService) DeleteSpecialDay(ownerID, businessID, date string) error {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return err
	}
	return s.AvailabilityRepo.DeleteSpecialDay(businessID, date)
}

// ListSpecialDays returns the business's special days.
func (s *DefaultBusinessService) ListSpecialDays(ownerID, businessID string) ([]models.SpecialDay, error) {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return nil, err
	}
	return s.AvailabilityRepo.ListSpecialDays(businessID)
}

// AddStaff appends a staff member to the caller's business.
func (s *DefaultBusinessService) AddStaff(ownerID, businessID string, staff models.StaffMember) (*models.StaffMember, error) {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return nil, err
	}
	staff.ID = uuid.New().String()
	staff.Active = true
	if err := s.Repo.AddStaff(businessID, staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

// UpdateStaff merges changes into an existing staff member. Unset fields
// keep their current values.
func (s *DefaultBusinessService) UpdateStaff(ownerID, businessID string, req models.StaffUpdateRequest) (*models.StaffMember, error) {
	current, err := s.requireOwnership(ownerID, businessID)
	if err != nil {
		return nil, err
	}

	var staff *models.StaffMember
	for i := range current.Staff {
		if current.Staff[i].ID == req.ID {
			staff = &current.Staff[i]
			break
		}
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := s.Repo.UpdateStaff(businessID, *staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// RemoveStaff removes a staff member from the caller's business.
func (s *DefaultBusinessService) RemoveStaff(ownerID, businessID, staffID string) error {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return err
	}
	return s.Repo.RemoveStaff(businessID, staffID)
}
