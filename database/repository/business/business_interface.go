package businessRepo

import (
	"autodetail/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BusinessRepository defines methods for business profile data access.
type BusinessRepository interface {
	// GetByID retrieves a business by its unique ID; returns nil when absent.
	GetByID(id string) (*models.Business, error)
	// GetByOwnerID retrieves the business owned by the given user; nil if none.
	GetByOwnerID(ownerID string) (*models.Business, error)
	// List retrieves active businesses, optionally filtered by city.
	List(city string) ([]models.Business, error)
	// Create inserts a new business record.
	Create(business *models.Business) error
	// Update modifies an existing business record.
	Update(business *models.Business) error
	// Delete removes a business record by its ID.
	Delete(id string) error
	// SetBusinessHours replaces the recurring weekly hours.
	SetBusinessHours(id string, hours models.BusinessHours) error
	// AddStaff appends a staff member to the business.
	AddStaff(id string, staff models.StaffMember) error
	// UpdateStaff replaces the staff member with the matching ID.
	UpdateStaff(id string, staff models.StaffMember) error
	// RemoveStaff removes the staff member with the given ID.
	RemoveStaff(id, staffID string) error
	// GetByIDWithProjection retrieves a business by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Business, error)
}
