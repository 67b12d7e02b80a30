package notification

import (
	"context"
	"strings"
	"testing"

	businessRepo "autodetail/database/repository/business"
	userRepo "autodetail/database/repository/user"
	"autodetail/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to, subject, body string
}

type fakeEmailSender struct {
	sent []sentEmail
	fail bool
}

func (f *fakeEmailSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if f.fail {
		return assert.AnError
	}
	f.sent = append(f.sent, sentEmail{to, subject, htmlBody})
	return nil
}

type fakeSMSSender struct {
	sent []string
}

func (f *fakeSMSSender) SendSMS(ctx context.Context, to, body string) error {
	f.sent = append(f.sent, to)
	return nil
}

type stubUserRepo struct {
	userRepo.UserRepository
	users map[string]*models.User
}

func (s *stubUserRepo) GetByID(id string) (*models.User, error) {
	return s.users[id], nil
}

type stubBusinessRepo struct {
	businessRepo.BusinessRepository
	biz *models.Business
}

func (s *stubBusinessRepo) GetByID(id string) (*models.Business, error) {
	return s.biz, nil
}

func testNotificationService(email *fakeEmailSender, sms SMSSender) *DefaultNotificationService {
	return &DefaultNotificationService{
		UserRepo: &stubUserRepo{users: map[string]*models.User{
			"cust-1":  {ID: "cust-1", Email: "cust@example.com", FirstName: "Sam", Phone: "+15550001111"},
			"owner-1": {ID: "owner-1", Email: "owner@example.com", FirstName: "Pat"},
		}},
		BusinessRepo: &stubBusinessRepo{biz: &models.Business{
			ID: "biz-1", OwnerID: "owner-1", Name: "Shine Works",
		}},
		Email: email,
		SMS:   sms,
	}
}

func testAppointment() *models.Appointment {
	return &models.Appointment{
		ID: "appt-1", BusinessID: "biz-1", CustomerID: "cust-1",
		ServiceName: "Full Detail", Date: "2025-06-02",
		StartTime: "09:00", EndTime: "11:00", Price: 150,
		Status: models.AppointmentConfirmed,
	}
}

func TestSendBookingConfirmationNotifiesBothParties(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	svc := testNotificationService(email, sms)

	require.NoError(t, svc.SendBookingConfirmation(context.Background(), testAppointment()))

	require.Len(t, email.sent, 2)
	assert.Equal(t, "cust@example.com", email.sent[0].to)
	assert.Equal(t, "owner@example.com", email.sent[1].to)
	assert.Contains(t, email.sent[0].subject, "Shine Works")
	assert.Contains(t, email.sent[0].body, "Monday, June 2 2025")
	assert.Equal(t, []string{"+15550001111"}, sms.sent)
}

func TestSendBookingConfirmationWithoutSMSChannel(t *testing.T) {
	email := &fakeEmailSender{}
	svc := testNotificationService(email, nil)

	require.NoError(t, svc.SendBookingConfirmation(context.Background(), testAppointment()))
	require.Len(t, email.sent, 2)
}

func TestSendBookingConfirmationEmailFailure(t *testing.T) {
	svc := testNotificationService(&fakeEmailSender{fail: true}, nil)
	err := svc.SendBookingConfirmation(context.Background(), testAppointment())
	assert.Error(t, err)
}

func TestSendAppointmentReminderGoesToCustomerOnly(t *testing.T) {
	email := &fakeEmailSender{}
	svc := testNotificationService(email, nil)

	require.NoError(t, svc.SendAppointmentReminder(context.Background(), testAppointment()))
	require.Len(t, email.sent, 1)
	assert.Equal(t, "cust@example.com", email.sent[0].to)
	assert.True(t, strings.HasPrefix(email.sent[0].subject, "Reminder:"))
}

func TestPrettyDateFallsBackOnBadInput(t *testing.T) {
	assert.Equal(t, "junk", prettyDate("junk"))
	assert.Equal(t, "Monday, June 2 2025", prettyDate("2025-06-02"))
}
