package booking

import (
	"context"

	appointmentRepo "autodetail/database/repository/appointment"
	businessRepo "autodetail/database/repository/business"
	vehicleRepo "autodetail/database/repository/vehicle"
	"autodetail/models"
	"autodetail/services/availability"
	"autodetail/services/notification"
)

// CreateRequest carries everything a customer submits to book a service.
// The end time is derived server-side from the service duration.
type CreateRequest struct {
	BusinessID string `json:"businessId" binding:"required"`
	ServiceID  string `json:"serviceId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	VehicleID  string `json:"vehicleId,omitempty"`
	StaffID    string `json:"staffId,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// BookingService manages the appointment lifecycle.
type BookingService interface {
	// CreateAppointment books a slot for the customer, verifies availability
	// and conflicts, notifies both parties and schedules a reminder.
	CreateAppointment(ctx context.Context, customerID string, req CreateRequest) (*models.Appointment, error)

	// ConfirmAppointment moves a pending appointment to confirmed. Owner only.
	ConfirmAppointment(ctx context.Context, callerID, appointmentID string) (*models.Appointment, error)

	// CancelAppointment cancels a pending or confirmed appointment. The
	// customer or the business owner may cancel.
	CancelAppointment(ctx context.Context, callerID, appointmentID string) (*models.Appointment, error)

	// CompleteAppointment marks a confirmed appointment done and writes a
	// service record against the vehicle, when one was attached. Owner only.
	CompleteAppointment(ctx context.Context, callerID, appointmentID string) (*models.Appointment, error)

	// RescheduleAppointment moves an active appointment to a new date and
	// start time, re-running the availability and conflict checks.
	RescheduleAppointment(ctx context.Context, callerID, appointmentID, date, startTime string) (*models.Appointment, error)

	ListForCustomer(customerID string) ([]models.Appointment, error)
	ListForBusiness(callerID, businessID string) ([]models.Appointment, error)
	ListForBusinessDate(callerID, businessID, date string) ([]models.Appointment, error)
}

// ReminderScheduler is the queue-side hook for appointment reminders.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	BusinessRepo    businessRepo.BusinessRepository
	VehicleRepo     vehicleRepo.VehicleRepository
	Availability    availability.AvailabilityService
	Notifier        notification.NotificationService
	Reminders       ReminderScheduler
}

var _ BookingService = (*DefaultBookingService)(nil)
