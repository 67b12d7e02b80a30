package assistant

import (
	"context"
	"testing"

	businessRepo "autodetail/database/repository/business"
	"autodetail/models"
	"autodetail/services/availability"
	"autodetail/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryContextStore struct {
	states map[string]*models.AssistantContext
}

func newMemoryContextStore() *memoryContextStore {
	return &memoryContextStore{states: map[string]*models.AssistantContext{}}
}

func (m *memoryContextStore) Get(ctx context.Context, userID string) (*models.AssistantContext, error) {
	if s, ok := m.states[userID]; ok {
		copied := *s
		return &copied, nil
	}
	return &models.AssistantContext{}, nil
}

func (m *memoryContextStore) Set(ctx context.Context, userID string, state *models.AssistantContext) error {
	copied := *state
	m.states[userID] = &copied
	return nil
}

func (m *memoryContextStore) Clear(ctx context.Context, userID string) error {
	delete(m.states, userID)
	return nil
}

type stubBusinessRepo struct {
	businessRepo.BusinessRepository
	biz *models.Business
}

func (s *stubBusinessRepo) GetByID(id string) (*models.Business, error) {
	return s.biz, nil
}

type stubAvailability struct {
	availability.AvailabilityService
	resolved *models.ResolvedAvailability
}

func (s *stubAvailability) ResolveDate(businessID, date string) (*models.ResolvedAvailability, error) {
	return s.resolved, nil
}

func (s *stubAvailability) BookableSlots(businessID, date string, durationMinutes int) (*models.ResolvedAvailability, error) {
	return s.resolved, nil
}

type stubBooking struct {
	booking.BookingService
	created *booking.CreateRequest
	fail    bool
}

func (s *stubBooking) CreateAppointment(ctx context.Context, customerID string, req booking.CreateRequest) (*models.Appointment, error) {
	if s.fail {
		return nil, booking.ErrSlotUnavailable
	}
	s.created = &req
	return &models.Appointment{
		ID: "appt-1", ServiceName: "Full Detail",
		Date: req.Date, StartTime: req.StartTime,
	}, nil
}

func assistantUnderTest(store ContextStore, avail *models.ResolvedAvailability, book *stubBooking) *DefaultAssistantService {
	return &DefaultAssistantService{
		Store: store,
		BusinessRepo: &stubBusinessRepo{biz: &models.Business{
			ID: "biz-1", OwnerID: "owner-1", Name: "Shine Works",
			Services: []models.ServiceOffering{
				{ID: "svc-1", Name: "Full Detail", DurationMinutes: 120, Price: 150},
				{ID: "svc-2", Name: "Wax", DurationMinutes: 60, Price: 60},
			},
		}},
		Availability: &stubAvailability{resolved: avail},
		Booking:      book,
	}
}

func openDay() *models.ResolvedAvailability {
	return &models.ResolvedAvailability{
		BusinessID: "biz-1", Date: "2025-06-02",
		Slots: []models.Slot{
			{StartTime: "09:00", EndTime: "11:00", Available: true},
			{StartTime: "11:00", EndTime: "13:00", Available: false},
		},
	}
}

func TestAvailabilityQuestionListsOpenWindows(t *testing.T) {
	svc := assistantUnderTest(newMemoryContextStore(), openDay(), &stubBooking{})

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1", Text: "any slots on 2025-06-02?", BusinessID: "biz-1",
	})
	require.NoError(t, err)
	assert.Equal(t, IntentAvailability, resp.Intent)
	assert.Contains(t, resp.ResponseText, "09:00 to 11:00")
	assert.NotContains(t, resp.ResponseText, "11:00 to 13:00")
}

func TestAvailabilityQuestionWithoutBusiness(t *testing.T) {
	svc := assistantUnderTest(newMemoryContextStore(), openDay(), &stubBooking{})

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1", Text: "what are your hours tomorrow",
	})
	require.NoError(t, err)
	assert.Equal(t, IntentAvailability, resp.Intent)
	assert.Contains(t, resp.ResponseText, "Which business")
}

func TestClosedDayAnswer(t *testing.T) {
	closed := &models.ResolvedAvailability{BusinessID: "biz-1", Date: "2025-06-01", IsClosed: true}
	svc := assistantUnderTest(newMemoryContextStore(), closed, &stubBooking{})

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1", Text: "open on 2025-06-01?", BusinessID: "biz-1",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "closed")
}

func TestGuidedBookingFlow(t *testing.T) {
	store := newMemoryContextStore()
	book := &stubBooking{}
	svc := assistantUnderTest(store, openDay(), book)
	ctx := context.Background()

	// Step 0: booking intent without naming a service lists the offerings.
	resp, err := svc.ProcessMessage(ctx, models.AssistantRequest{
		UserID: "u1", Text: "I want to book something", BusinessID: "biz-1",
	})
	require.NoError(t, err)
	assert.Equal(t, IntentBook, resp.Intent)
	require.Len(t, resp.Actions, 2)
	assert.Equal(t, "select_service", resp.Actions[0].Type)
	assert.Equal(t, 1, store.states["u1"].BookingStep)

	// Step 1: the user picks a service by name.
	resp, err = svc.ProcessMessage(ctx, models.AssistantRequest{UserID: "u1", Text: "full detail please"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "What date")
	assert.Equal(t, "svc-1", store.states["u1"].ServiceID)

	// Step 2: the user gives a date and gets the free slots.
	resp, err = svc.ProcessMessage(ctx, models.AssistantRequest{UserID: "u1", Text: "2025-06-02"})
	require.NoError(t, err)
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, "09:00", resp.Actions[0].Label)
	assert.Equal(t, 3, store.states["u1"].BookingStep)

	// Step 3: the user picks a time and the booking lands.
	resp, err = svc.ProcessMessage(ctx, models.AssistantRequest{UserID: "u1", Text: "09:00 works"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "booked")
	require.NotNil(t, book.created)
	assert.Equal(t, "biz-1", book.created.BusinessID)
	assert.Equal(t, "svc-1", book.created.ServiceID)
	assert.Equal(t, "2025-06-02", book.created.Date)
	assert.Equal(t, "09:00", book.created.StartTime)

	// Context cleared after the booking completes.
	_, ok := store.states["u1"]
	assert.False(t, ok)
}

func TestBookingNamedServiceSkipsSelection(t *testing.T) {
	store := newMemoryContextStore()
	svc := assistantUnderTest(store, openDay(), &stubBooking{})

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1", Text: "book a wax", BusinessID: "biz-1",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "What date")
	assert.Equal(t, "svc-2", store.states["u1"].ServiceID)
	assert.Equal(t, 2, store.states["u1"].BookingStep)
}

func TestBookingFailureKeepsConversationAlive(t *testing.T) {
	store := newMemoryContextStore()
	store.states["u1"] = &models.AssistantContext{
		BusinessID: "biz-1", ServiceID: "svc-1", Date: "2025-06-02", BookingStep: 3,
	}
	svc := assistantUnderTest(store, openDay(), &stubBooking{fail: true})

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{UserID: "u1", Text: "09:00"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "didn't work out")
}

func TestChatFallbackWithoutCompleter(t *testing.T) {
	svc := assistantUnderTest(newMemoryContextStore(), openDay(), &stubBooking{})

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{UserID: "u1", Text: "hi there"})
	require.NoError(t, err)
	assert.Equal(t, IntentChat, resp.Intent)
	assert.NotEmpty(t, resp.ResponseText)
}

func TestBookingStepTwoRepromptsWithoutDate(t *testing.T) {
	store := newMemoryContextStore()
	store.states["u1"] = &models.AssistantContext{BusinessID: "biz-1", ServiceID: "svc-1", BookingStep: 2}
	svc := assistantUnderTest(store, openDay(), &stubBooking{})

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{UserID: "u1", Text: "whenever"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "Which date")
	assert.Equal(t, 2, store.states["u1"].BookingStep)
}
