package business

import (
	"testing"

	businessRepo "autodetail/database/repository/business"
	"autodetail/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessRepo struct {
	businessRepo.BusinessRepository
	byID         map[string]*models.Business
	updated      *models.Business
	updatedStaff *models.StaffMember
}

func newFakeBusinessRepo(bizs ...*models.Business) *fakeBusinessRepo {
	f := &fakeBusinessRepo{byID: map[string]*models.Business{}}
	for _, b := range bizs {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	return f.byID[id], nil
}

func (f *fakeBusinessRepo) Update(b *models.Business) error {
	f.updated = b
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBusinessRepo) UpdateStaff(businessID string, staff models.StaffMember) error {
	f.updatedStaff = &staff
	return nil
}

func str(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

func shineCo() *models.Business {
	return &models.Business{
		ID:      "biz-1",
		OwnerID: "owner-1",
		Name:    "Shine Co",
		City:    "Austin",
		Active:  true,
		Services: []models.ServiceOffering{
			{ID: "svc-1", Name: "Full Detail", DurationMinutes: 120, Price: 150},
		},
		Staff: []models.StaffMember{
			{ID: "staff-1", Name: "Jo", Role: "detailer", Phone: "+15550001111", Active: true},
		},
		BusinessHours: models.BusinessHours{"monday": {Open: "09:00", Close: "17:00"}},
	}
}

func TestUpdateBusinessPartialPatchKeepsUnsentFields(t *testing.T) {
	repo := newFakeBusinessRepo(shineCo())
	svc := &DefaultBusinessService{Repo: repo}

	updated, err := svc.UpdateBusiness("owner-1", models.BusinessUpdateRequest{
		ID:   "biz-1",
		Name: str("Shine Co Deluxe"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Shine Co Deluxe", updated.Name)
	assert.True(t, repo.updated.Active, "active flag survives a name-only patch")
	assert.Len(t, repo.updated.Services, 1, "services survive a name-only patch")
	require.NotNil(t, repo.updated.BusinessHours)
	assert.Equal(t, "09:00", repo.updated.BusinessHours["monday"].Open)
	assert.Equal(t, "Austin", repo.updated.City)
}

func TestUpdateBusinessExplicitDeactivation(t *testing.T) {
	repo := newFakeBusinessRepo(shineCo())
	svc := &DefaultBusinessService{Repo: repo}

	updated, err := svc.UpdateBusiness("owner-1", models.BusinessUpdateRequest{
		ID:     "biz-1",
		Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "Shine Co", updated.Name)
}

func TestUpdateBusinessAssignsServiceIDs(t *testing.T) {
	repo := newFakeBusinessRepo(shineCo())
	svc := &DefaultBusinessService{Repo: repo}

	updated, err := svc.UpdateBusiness("owner-1", models.BusinessUpdateRequest{
		ID:       "biz-1",
		Services: []models.ServiceOffering{{Name: "Wax", DurationMinutes: 60, Price: 80}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Services, 1)
	assert.NotEmpty(t, updated.Services[0].ID)
}

func TestUpdateBusinessOwnershipGuard(t *testing.T) {
	repo := newFakeBusinessRepo(shineCo())
	svc := &DefaultBusinessService{Repo: repo}

	_, err := svc.UpdateBusiness("intruder", models.BusinessUpdateRequest{
		ID:   "biz-1",
		Name: str("Hijacked"),
	})
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Nil(t, repo.updated)
}

func TestUpdateBusinessUnknownBusiness(t *testing.T) {
	svc := &DefaultBusinessService{Repo: newFakeBusinessRepo()}

	_, err := svc.UpdateBusiness("owner-1", models.BusinessUpdateRequest{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStaffMergesIntoExisting(t *testing.T) {
	repo := newFakeBusinessRepo(shineCo())
	svc := &DefaultBusinessService{Repo: repo}

	staff, err := svc.UpdateStaff("owner-1", "biz-1", models.StaffUpdateRequest{
		ID:   "staff-1",
		Name: str("Joanna"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Joanna", staff.Name)
	assert.Equal(t, "+15550001111", staff.Phone, "phone survives a name-only update")
	assert.True(t, staff.Active, "active flag survives a name-only update")
	require.NotNil(t, repo.updatedStaff)
	assert.Equal(t, "Joanna", repo.updatedStaff.Name)
}

func TestUpdateStaffUnknownMember(t *testing.T) {
	svc := &DefaultBusinessService{Repo: newFakeBusinessRepo(shineCo())}

	_, err := svc.UpdateStaff("owner-1", "biz-1", models.StaffUpdateRequest{
		ID:     "staff-404",
		Active: boolPtr(false),
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
