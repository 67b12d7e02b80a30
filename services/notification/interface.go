package notification

import (
	"context"

	businessRepo "autodetail/database/repository/business"
	userRepo "autodetail/database/repository/user"
	"autodetail/models"
)

// EmailSender delivers one HTML email. Implementations: Resend, SMTP, Gmail.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// SMSSender delivers one SMS. Implementation: Twilio.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// NotificationService sends appointment lifecycle notifications to the
// customer and the business owner over the configured channels.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error
	SendBookingCancellation(ctx context.Context, appt *models.Appointment) error
	SendAppointmentReminder(ctx context.Context, appt *models.Appointment) error
}

// DefaultNotificationService is the production implementation. Email is
// required; SMS is optional and skipped when nil or when the recipient has
// no phone number.
type DefaultNotificationService struct {
	UserRepo     userRepo.UserRepository
	BusinessRepo businessRepo.BusinessRepository
	Email        EmailSender
	SMS          SMSSender
}
