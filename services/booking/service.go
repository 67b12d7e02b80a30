package booking

import (
	"context"
	"fmt"
	"time"

	"autodetail/models"
	"autodetail/services/availability"
	"autodetail/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAppointment books a slot. The flow is validate service, derive the
// end time from the offering duration, verify the range sits in an open
// availability window, reject conflicts, persist, then notify.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, customerID string, req CreateRequest) (*models.Appointment, error) {
	business, err := s.BusinessRepo.GetByID(req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("booking: failed to fetch business %s: %w", req.BusinessID, err)
	}
	if business == nil {
		return nil, fmt.Errorf("booking: business %s not found", req.BusinessID)
	}

	offering := business.ServiceByID(req.ServiceID)
	if offering == nil {
		return nil, ErrUnknownService
	}

	start, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime := availability.FormatClock(start + offering.DurationMinutes)

	if err := s.checkSlot(req.BusinessID, req.Date, req.StartTime, endTime, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:          uuid.New().String(),
		BusinessID:  req.BusinessID,
		CustomerID:  customerID,
		ServiceID:   offering.ID,
		ServiceName: offering.Name,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     endTime,
		VehicleID:   req.VehicleID,
		StaffID:     req.StaffID,
		Notes:       req.Notes,
		Price:       offering.Price,
		Status:      models.AppointmentPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.AppointmentRepo.Create(appt); err != nil {
		return nil, fmt.Errorf("booking: failed to create appointment: %w", err)
	}

	s.afterBooking(ctx, appt)
	return appt, nil
}

// checkSlot verifies [startTime, endTime) fits an available window on the
// resolved day and overlaps no other active appointment.
func (s *DefaultBookingService) checkSlot(businessID, date, startTime, endTime, excludeID string) error {
	resolved, err := s.Availability.ResolveDate(businessID, date)
	if err != nil {
		return err
	}
	if resolved.IsClosed || !fitsWindow(resolved.Slots, startTime, endTime) {
		return ErrSlotUnavailable
	}

	overlapping, err := s.AppointmentRepo.FindOverlapping(businessID, date, startTime, endTime, excludeID)
	if err != nil {
		return fmt.Errorf("booking: conflict check failed: %w", err)
	}
	if len(overlapping) > 0 {
		return ErrConflict
	}
	return nil
}

// fitsWindow reports whether [start, end) is contained in a single available
// window. Zero-padded clocks compare correctly as strings.
func fitsWindow(windows []models.Slot, start, end string) bool {
	if start >= end {
		return false
	}
	for _, w := range windows {
		if w.Available && w.StartTime <= start && end <= w.EndTime {
			return true
		}
	}
	return false
}

// afterBooking runs the side effects of a new booking. Failures here never
// fail the booking itself.
func (s *DefaultBookingService) afterBooking(ctx context.Context, appt *models.Appointment) {
	logger := utils.GetLogger()
	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, appt); err != nil {
			logger.Error("booking: confirmation notification failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(appt); err != nil {
			logger.Error("booking: reminder scheduling failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
}

// ConfirmAppointment moves pending to confirmed. Only the business owner may
// confirm.
func (s *DefaultBookingService) ConfirmAppointment(ctx context.Context, callerID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.fetchAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(callerID, appt.BusinessID); err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentPending {
		return nil, fmt.Errorf("%w: cannot confirm a %s appointment", ErrInvalidTransition, appt.Status)
	}

	if err := s.AppointmentRepo.UpdateStatus(appt.ID, models.AppointmentConfirmed); err != nil {
		return nil, fmt.Errorf("booking: failed to confirm appointment: %w", err)
	}
	appt.Status = models.AppointmentConfirmed
	return appt, nil
}

// CancelAppointment cancels a pending or confirmed appointment. The customer
// or the business owner may cancel; the other party gets notified.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, callerID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.fetchAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireParticipant(callerID, appt); err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentPending && appt.Status != models.AppointmentConfirmed {
		return nil, fmt.Errorf("%w: cannot cancel a %s appointment", ErrInvalidTransition, appt.Status)
	}

	if err := s.AppointmentRepo.UpdateStatus(appt.ID, models.AppointmentCancelled); err != nil {
		return nil, fmt.Errorf("booking: failed to cancel appointment: %w", err)
	}
	appt.Status = models.AppointmentCancelled

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingCancellation(ctx, appt); err != nil {
			utils.GetLogger().Error("booking: cancellation notification failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

// CompleteAppointment marks a confirmed appointment done and, when a vehicle
// was attached, appends a service record to its history. Owner only.
func (s *DefaultBookingService) CompleteAppointment(ctx context.Context, callerID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.fetchAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(callerID, appt.BusinessID); err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentConfirmed {
		return nil, fmt.Errorf("%w: cannot complete a %s appointment", ErrInvalidTransition, appt.Status)
	}

	if err := s.AppointmentRepo.UpdateStatus(appt.ID, models.AppointmentCompleted); err != nil {
		return nil, fmt.Errorf("booking: failed to complete appointment: %w", err)
	}
	appt.Status = models.AppointmentCompleted

	if appt.VehicleID != "" && s.VehicleRepo != nil {
		record := &models.ServiceRecord{
			ID:            uuid.New().String(),
			VehicleID:     appt.VehicleID,
			AppointmentID: appt.ID,
			BusinessID:    appt.BusinessID,
			ServiceName:   appt.ServiceName,
			Date:          appt.Date,
			Price:         appt.Price,
			Notes:         appt.Notes,
			CreatedAt:     time.Now(),
		}
		if err := s.VehicleRepo.AddServiceRecord(record); err != nil {
			utils.GetLogger().Error("booking: failed to write service record",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

// RescheduleAppointment moves an active appointment to a new date and start
// time, keeping the same service duration.
func (s *DefaultBookingService) RescheduleAppointment(ctx context.Context, callerID, appointmentID, date, startTime string) (*models.Appointment, error) {
	appt, err := s.fetchAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireParticipant(callerID, appt); err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentPending && appt.Status != models.AppointmentConfirmed {
		return nil, fmt.Errorf("%w: cannot reschedule a %s appointment", ErrInvalidTransition, appt.Status)
	}

	oldStart, err := availability.ParseClock(appt.StartTime)
	if err != nil {
		return nil, err
	}
	oldEnd, err := availability.ParseClock(appt.EndTime)
	if err != nil {
		return nil, err
	}
	newStart, err := availability.ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	endTime := availability.FormatClock(newStart + (oldEnd - oldStart))

	if err := s.checkSlot(appt.BusinessID, date, startTime, endTime, appt.ID); err != nil {
		return nil, err
	}

	appt.Date = date
	appt.StartTime = startTime
	appt.EndTime = endTime
	appt.UpdatedAt = time.Now()
	if err := s.AppointmentRepo.Update(appt); err != nil {
		return nil, fmt.Errorf("booking: failed to reschedule appointment: %w", err)
	}

	s.afterBooking(ctx, appt)
	return appt, nil
}

func (s *DefaultBookingService) ListForCustomer(customerID string) ([]models.Appointment, error) {
	return s.AppointmentRepo.ListByCustomer(customerID)
}

func (s *DefaultBookingService) ListForBusiness(callerID, businessID string) ([]models.Appointment, error) {
	if err := s.requireOwner(callerID, businessID); err != nil {
		return nil, err
	}
	return s.AppointmentRepo.ListByBusiness(businessID)
}

func (s *DefaultBookingService) ListForBusinessDate(callerID, businessID, date string) ([]models.Appointment, error) {
	if err := s.requireOwner(callerID, businessID); err != nil {
		return nil, err
	}
	return s.AppointmentRepo.ListByBusinessAndDate(businessID, date)
}

func (s *DefaultBookingService) fetchAppointment(id string) (*models.Appointment, error) {
	appt, err := s.AppointmentRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("booking: failed to fetch appointment %s: %w", id, err)
	}
	if appt == nil {
		return nil, fmt.Errorf("booking: appointment %s not found", id)
	}
	return appt, nil
}

func (s *DefaultBookingService) requireOwner(callerID, businessID string) error {
	business, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		return fmt.Errorf("booking: failed to fetch business %s: %w", businessID, err)
	}
	if business == nil || business.OwnerID != callerID {
		return ErrNotAllowed
	}
	return nil
}

func (s *DefaultBookingService) requireParticipant(callerID string, appt *models.Appointment) error {
	if appt.CustomerID == callerID {
		return nil
	}
	return s.requireOwner(callerID, appt.BusinessID)
}
