package business

import (
	availabilityRepo "autodetail/database/repository/availability"
	businessRepo "autodetail/database/repository/business"
	"autodetail/models"
)

// BusinessService manages business profiles, schedules and staff.
type BusinessService interface {
	// Profile
	CreateBusiness(ownerID string, biz models.Business) (*models.Business, error)
	GetBusinessByID(id string) (*models.Business, error)
	GetBusinessByOwner(ownerID string) (*models.Business, error)
	ListBusinesses(city string) ([]models.Business, error)
	UpdateBusiness(ownerID string, req models.BusinessUpdateRequest) (*models.Business, error)
	DeleteBusiness(ownerID, businessID string) error

	// Recurring weekly hours
	SetBusinessHours(ownerID, businessID string, hours models.BusinessHours) error

	// Per-date exceptions
	SetOverride(ownerID, businessID, date string, slots []models.Slot) (*models.AvailabilityOverride, error)
	DeleteOverride(ownerID, businessID, date string) error
	ListOverrides(ownerID, businessID string) ([]models.AvailabilityOverride, error)
	SetSpecialDay(ownerID, businessID string, day models.SpecialDay) (*models.SpecialDay, error)
	DeleteSpecialDay(ownerID, businessID, date string) error
	ListSpecialDays(ownerID, businessID string) ([]models.SpecialDay, error)

	// Staff
	AddStaff(ownerID, businessID string, staff models.StaffMember) (*models.StaffMember, error)
	UpdateStaff(ownerID, businessID string, req models.StaffUpdateRequest) (*models.StaffMember, error)
	RemoveStaff(ownerID, businessID, staffID string) error
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo             businessRepo.BusinessRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
}
