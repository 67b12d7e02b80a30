package notification

import (
	"context"
	"fmt"

	"autodetail/models"
	"autodetail/utils"

	"go.uber.org/zap"
)

// participants resolves the customer, business and owner for an appointment.
func (s *DefaultNotificationService) participants(appt *models.Appointment) (*models.User, *models.Business, *models.User, error) {
	customer, err := s.UserRepo.GetByID(appt.CustomerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("notification: failed to fetch customer %s: %w", appt.CustomerID, err)
	}
	biz, err := s.BusinessRepo.GetByID(appt.BusinessID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("notification: failed to fetch business %s: %w", appt.BusinessID, err)
	}
	if biz == nil {
		return nil, nil, nil, fmt.Errorf("notification: business %s no longer exists", appt.BusinessID)
	}
	owner, err := s.UserRepo.GetByID(biz.OwnerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("notification: failed to fetch owner %s: %w", biz.OwnerID, err)
	}
	return customer, biz, owner, nil
}

// sendSMSIfPossible delivers an SMS when a sender is configured and the
// recipient has a phone number. SMS failures are logged, never propagated;
// email is the channel of record.
func (s *DefaultNotificationService) sendSMSIfPossible(ctx context.Context, phone, body string) {
	if s.SMS == nil || phone == "" {
		return
	}
	if err := s.SMS.SendSMS(ctx, phone, body); err != nil {
		utils.GetLogger().Warn("notification: SMS delivery failed",
			zap.String("to", phone), zap.Error(err))
	}
}

// SendBookingConfirmation notifies both parties of a new booking.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error {
	customer, biz, owner, err := s.participants(appt)
	if err != nil {
		return err
	}

	subject := confirmationSubject(appt, biz.Name)
	if err := s.Email.SendEmail(ctx, customer.Email, subject, confirmationEmailBody(appt, customer.FullName(), biz.Name)); err != nil {
		return fmt.Errorf("notification: customer confirmation email failed: %w", err)
	}
	s.sendSMSIfPossible(ctx, customer.Phone, confirmationSMSBody(appt, biz.Name))

	if err := s.Email.SendEmail(ctx, owner.Email, subject, ownerConfirmationEmailBody(appt, customer.FullName())); err != nil {
		// The customer already got theirs; log rather than fail the booking.
		utils.GetLogger().Warn("notification: owner confirmation email failed",
			zap.String("businessID", biz.ID), zap.Error(err))
	}
	return nil
}

// SendBookingCancellation notifies both parties of a cancellation.
func (s *DefaultNotificationService) SendBookingCancellation(ctx context.Context, appt *models.Appointment) error {
	customer, biz, owner, err := s.participants(appt)
	if err != nil {
		return err
	}

	subject := cancellationSubject(appt, biz.Name)
	body := cancellationEmailBody(appt, customer.FullName(), biz.Name)
	if err := s.Email.SendEmail(ctx, customer.Email, subject, body); err != nil {
		return fmt.Errorf("notification: customer cancellation email failed: %w", err)
	}
	if err := s.Email.SendEmail(ctx, owner.Email, subject, body); err != nil {
		utils.GetLogger().Warn("notification: owner cancellation email failed",
			zap.String("businessID", biz.ID), zap.Error(err))
	}
	return nil
}

// SendAppointmentReminder sends the T-24h reminder to the customer.
func (s *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	customer, biz, _, err := s.participants(appt)
	if err != nil {
		return err
	}

	if err := s.Email.SendEmail(ctx, customer.Email, reminderSubject(appt, biz.Name), reminderEmailBody(appt, customer.FullName(), biz.Name)); err != nil {
		return fmt.Errorf("notification: reminder email failed: %w", err)
	}
	s.sendSMSIfPossible(ctx, customer.Phone, reminderSMSBody(appt, biz.Name))
	return nil
}
