package appointmentRepo

import "autodetail/models"

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID; returns nil when
	// absent.
	GetByID(id string) (*models.Appointment, error)
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// Update modifies an existing appointment record.
	Update(appt *models.Appointment) error
	// UpdateStatus transitions an appointment to the given status.
	UpdateStatus(id, status string) error
	// ListByCustomer returns a customer's appointments, newest first.
	ListByCustomer(customerID string) ([]models.Appointment, error)
	// ListByBusiness returns a business's appointments, newest first.
	ListByBusiness(businessID string) ([]models.Appointment, error)
	// ListByBusinessAndDate returns a business's appointments for one date.
	ListByBusinessAndDate(businessID, date string) ([]models.Appointment, error)
	// FindOverlapping returns non-cancelled appointments for the business on
	// the date whose [start, end) range intersects the given one, excluding
	// excludeID (pass "" to exclude nothing).
	FindOverlapping(businessID, date, startTime, endTime, excludeID string) ([]models.Appointment, error)
}
