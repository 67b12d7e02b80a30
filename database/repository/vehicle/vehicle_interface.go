package vehicleRepo

import "autodetail/models"

// VehicleRepository defines methods for vehicle and service-history access.
type VehicleRepository interface {
	// GetByID retrieves a vehicle by its unique ID.
	GetByID(id string) (*models.Vehicle, error)
	// ListByOwner returns a customer's vehicles.
	ListByOwner(ownerID string) ([]models.Vehicle, error)
	// Create inserts a new vehicle record.
	Create(vehicle *models.Vehicle) error
	// Update modifies an existing vehicle record.
	Update(vehicle *models.Vehicle) error
	// Delete removes a vehicle record by its ID.
	Delete(id string) error

	// AddServiceRecord appends a completed service to the vehicle's history.
	AddServiceRecord(record *models.ServiceRecord) error
	// ListServiceRecords returns a vehicle's service history, newest first.
	ListServiceRecords(vehicleID string) ([]models.ServiceRecord, error)
}
