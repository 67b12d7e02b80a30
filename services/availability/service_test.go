package availability

import (
	"errors"
	"testing"

	appointmentRepo "autodetail/database/repository/appointment"
	availabilityRepo "autodetail/database/repository/availability"
	businessRepo "autodetail/database/repository/business"
	"autodetail/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes embed the repository interfaces and override only what the service
// touches; calling anything else panics, which is what we want in a test.

type fakeBusinessRepo struct {
	businessRepo.BusinessRepository
	biz *models.Business
}

func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	return f.biz, nil
}

type fakeAvailabilityRepo struct {
	availabilityRepo.AvailabilityRepository
	overrides   map[string]*models.AvailabilityOverride
	specialDays map[string]*models.SpecialDay
}

func (f *fakeAvailabilityRepo) GetOverride(businessID, date string) (*models.AvailabilityOverride, error) {
	return f.overrides[date], nil
}

func (f *fakeAvailabilityRepo) GetSpecialDay(businessID, date string) (*models.SpecialDay, error) {
	return f.specialDays[date], nil
}

type fakeAppointmentRepo struct {
	appointmentRepo.AppointmentRepository
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) ListByBusinessAndDate(businessID, date string) ([]models.Appointment, error) {
	return f.appts, nil
}

func newTestService(biz *models.Business) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		BusinessRepo: &fakeBusinessRepo{biz: biz},
		AvailabilityRepo: &fakeAvailabilityRepo{
			overrides:   map[string]*models.AvailabilityOverride{},
			specialDays: map[string]*models.SpecialDay{},
		},
		AppointmentRepo: &fakeAppointmentRepo{},
	}
}

func TestResolveDateFetchesAndResolves(t *testing.T) {
	svc := newTestService(weekdayBusiness(mondayToFriday()))

	res, err := svc.ResolveDate("biz-1", "2025-06-02")
	require.NoError(t, err)
	require.Len(t, res.Slots, 1)
	assert.Equal(t, "09:00", res.Slots[0].StartTime)
}

func TestResolveRangeAppliesPerDatePrecedence(t *testing.T) {
	svc := newTestService(weekdayBusiness(mondayToFriday()))
	availRepo := svc.AvailabilityRepo.(*fakeAvailabilityRepo)
	// Monday 2025-06-02 is overridden, Monday 2025-06-09 is a holiday.
	availRepo.overrides["2025-06-02"] = &models.AvailabilityOverride{
		BusinessID: "biz-1", Date: "2025-06-02",
		Slots: []models.Slot{{StartTime: "10:00", EndTime: "12:00", Available: true}},
	}
	availRepo.specialDays["2025-06-09"] = &models.SpecialDay{
		BusinessID: "biz-1", Date: "2025-06-09", IsOpen: false,
	}

	results, err := svc.ResolveRange("biz-1", "2025-06-01", 14)
	require.NoError(t, err)
	require.Len(t, results, 14)

	byDate := map[string]models.ResolvedAvailability{}
	for _, r := range results {
		byDate[r.Date] = r
	}

	assert.Equal(t, "10:00", byDate["2025-06-02"].Slots[0].StartTime)
	assert.True(t, byDate["2025-06-09"].IsSpecialDay)
	assert.Empty(t, byDate["2025-06-09"].Slots)
	assert.True(t, byDate["2025-06-01"].IsClosed) // Sunday
}

type erroringAvailabilityRepo struct {
	availabilityRepo.AvailabilityRepository
	failOn string
}

func (f *erroringAvailabilityRepo) GetOverride(businessID, date string) (*models.AvailabilityOverride, error) {
	if date == f.failOn {
		return nil, errors.New("connection reset")
	}
	return nil, nil
}

func (f *erroringAvailabilityRepo) GetSpecialDay(businessID, date string) (*models.SpecialDay, error) {
	return nil, nil
}

func TestResolveRangePropagatesFetchErrors(t *testing.T) {
	svc := newTestService(weekdayBusiness(mondayToFriday()))
	svc.AvailabilityRepo = &erroringAvailabilityRepo{failOn: "2025-06-03"}

	// One bad date fails the whole range, the same way ResolveDate would
	// fail for that day.
	_, err := svc.ResolveRange("biz-1", "2025-06-01", 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2025-06-03")
}

func TestResolveDateUnknownBusiness(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.ResolveDate("ghost", "2025-06-02")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ResolveRange("ghost", "2025-06-02", 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveRangeRejectsBadInput(t *testing.T) {
	svc := newTestService(weekdayBusiness(mondayToFriday()))

	_, err := svc.ResolveRange("biz-1", "2025-06-01", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ResolveRange("biz-1", "junk", 7)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookableSlotsSubdividesAndFlagsConflicts(t *testing.T) {
	svc := newTestService(weekdayBusiness(mondayToFriday()))
	svc.AppointmentRepo = &fakeAppointmentRepo{appts: []models.Appointment{
		{StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentConfirmed},
		{StartTime: "13:00", EndTime: "14:00", Status: models.AppointmentCancelled},
	}}

	res, err := svc.BookableSlots("biz-1", "2025-06-02", 60)
	require.NoError(t, err)
	require.Len(t, res.Slots, 8) // 09:00-17:00 in 60-minute cuts

	byStart := map[string]bool{}
	for _, s := range res.Slots {
		byStart[s.StartTime] = s.Available
	}
	assert.False(t, byStart["10:00"], "confirmed appointment blocks its slot")
	assert.True(t, byStart["13:00"], "cancelled appointment does not block")
	assert.True(t, byStart["09:00"])
}

func TestBookableSlotsOnClosedDay(t *testing.T) {
	svc := newTestService(weekdayBusiness(mondayToFriday()))

	res, err := svc.BookableSlots("biz-1", "2025-06-01", 60)
	require.NoError(t, err)
	assert.True(t, res.IsClosed)
	assert.Empty(t, res.Slots)
}

func TestSubdivideSlotsPartialTail(t *testing.T) {
	windows := []models.Slot{{StartTime: "09:00", EndTime: "10:30", Available: true}}
	slots := SubdivideSlots(windows, 60, nil)
	// The trailing 30 minutes cannot fit a 60-minute service.
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
}

func TestClockHelpers(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)
	assert.Equal(t, "09:30", FormatClock(570))

	_, err = ParseClock("9am")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
