package user

import (
	"encoding/json"
	"fmt"
	"testing"

	userRepo "autodetail/database/repository/user"
	"autodetail/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	userRepo.UserRepository
	byClerkID map[string]*models.User
	byID      map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byClerkID: map[string]*models.User{},
		byID:      map[string]*models.User{},
	}
}

func (f *fakeUserRepo) add(u *models.User) {
	f.byClerkID[u.ClerkID] = u
	f.byID[u.ID] = u
}

func (f *fakeUserRepo) GetByClerkID(clerkID string) (*models.User, error) {
	return f.byClerkID[clerkID], nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u := f.byID[id]
	if u == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return u, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.add(u)
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.add(u)
	return nil
}

func (f *fakeUserRepo) DeleteByClerkID(clerkID string) error {
	if u := f.byClerkID[clerkID]; u != nil {
		delete(f.byID, u.ID)
	}
	delete(f.byClerkID, clerkID)
	return nil
}

func clerkEvent(t *testing.T, eventType string, data models.ClerkUserData) models.ClerkEvent {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return models.ClerkEvent{Type: eventType, Data: raw}
}

func TestSyncFromClerkCreatesUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	data := models.ClerkUserData{
		ID:                    "clerk_abc",
		FirstName:             "Ada",
		LastName:              "Lovelace",
		PrimaryEmailAddressID: "em_1",
		EmailAddresses: []models.ClerkEmailAddress{
			{ID: "em_2", EmailAddress: "secondary@example.com"},
			{ID: "em_1", EmailAddress: "ada@example.com"},
		},
	}

	require.NoError(t, svc.SyncFromClerk(clerkEvent(t, "user.created", data)))

	created := repo.byClerkID["clerk_abc"]
	require.NotNil(t, created)
	assert.Equal(t, "ada@example.com", created.Email, "primary email is chosen by ID, not position")
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Role, "role is assigned at onboarding, not by the webhook")
}

func TestSyncFromClerkUpdatePreservesLocalState(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byClerkID["clerk_abc"] = &models.User{
		ID: "u1", ClerkID: "clerk_abc", Email: "old@example.com",
		Role: models.RoleOwner, EmailUpdates: true,
	}
	svc := &DefaultUserService{Repo: repo}

	data := models.ClerkUserData{
		ID:                    "clerk_abc",
		FirstName:             "Ada",
		PrimaryEmailAddressID: "em_1",
		EmailAddresses:        []models.ClerkEmailAddress{{ID: "em_1", EmailAddress: "new@example.com"}},
	}
	require.NoError(t, svc.SyncFromClerk(clerkEvent(t, "user.updated", data)))

	updated := repo.byClerkID["clerk_abc"]
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, models.RoleOwner, updated.Role)
	assert.True(t, updated.EmailUpdates)
	assert.Equal(t, "u1", updated.ID, "local ID is stable across updates")
}

func TestSyncFromClerkDelete(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byClerkID["clerk_abc"] = &models.User{ID: "u1", ClerkID: "clerk_abc"}
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.SyncFromClerk(clerkEvent(t, "user.deleted", models.ClerkUserData{ID: "clerk_abc"})))
	assert.Nil(t, repo.byClerkID["clerk_abc"])
}

func TestSyncFromClerkUnknownEvent(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	err := svc.SyncFromClerk(models.ClerkEvent{Type: "session.created", Data: json.RawMessage("{}")})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestSelectRoleValidation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.SelectRole("u1", "admin")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
