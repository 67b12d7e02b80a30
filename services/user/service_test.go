package user

import (
	"context"
	"encoding/base64"
	"errors"
	"math/big"
	"testing"

	"autodetail/models"
	"autodetail/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClerkVerifier struct {
	subjects map[string]string // session token -> clerk user ID
}

func (f *fakeClerkVerifier) Verify(ctx context.Context, token string) (string, error) {
	if sub, ok := f.subjects[token]; ok {
		return sub, nil
	}
	return "", errors.New("signature mismatch")
}

func sessionService(repo *fakeUserRepo, subjects map[string]string) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Clerk: &fakeClerkVerifier{subjects: subjects}}
}

func TestCreateSessionRejectsUnverifiedToken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&models.User{ID: "u1", ClerkID: "clerk_abc", Email: "ada@example.com", Role: models.RoleOwner})
	svc := sessionService(repo, map[string]string{})

	resp, err := svc.CreateSession(context.Background(), "forged-token")
	assert.ErrorIs(t, err, ErrUnverifiedSession)
	assert.Nil(t, resp)
	assert.Empty(t, repo.byID["u1"].TokenHash, "no session state is written for a rejected token")
}

func TestCreateSessionRequiresVerifier(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	resp, err := svc.CreateSession(context.Background(), "any-token")
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestCreateSessionIssuesTokenForVerifiedSubject(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&models.User{ID: "u1", ClerkID: "clerk_abc", Email: "ada@example.com", Role: models.RoleOwner})
	svc := sessionService(repo, map[string]string{"clerk-session": "clerk_abc"})

	resp, err := svc.CreateSession(context.Background(), "clerk-session")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	sub, role, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)
	assert.Equal(t, models.RoleOwner, role)
	assert.Equal(t, utils.HashToken(resp.Token), repo.byID["u1"].TokenHash)
}

func TestCreateSessionUnknownSubject(t *testing.T) {
	svc := sessionService(newFakeUserRepo(), map[string]string{"clerk-session": "clerk_nobody"})

	_, err := svc.CreateSession(context.Background(), "clerk-session")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestSelectRoleReissuesSessionToken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&models.User{ID: "u1", ClerkID: "clerk_abc", Email: "ada@example.com", TokenHash: "old-hash"})
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.SelectRole("u1", models.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, resp.Role)

	// The fresh token must carry the new role claim so RequireRole passes on
	// the cache-hit auth path.
	sub, role, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)
	assert.Equal(t, models.RoleOwner, role)

	stored := repo.byID["u1"]
	assert.Equal(t, models.RoleOwner, stored.Role)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash, "old token stops matching the stored hash")
}

func TestRSAKeyFromJWK(t *testing.T) {
	modulus := new(big.Int).SetInt64(0x0badc0ffee)
	n := base64.RawURLEncoding.EncodeToString(modulus.Bytes())
	e := base64.RawURLEncoding.EncodeToString([]byte{0x01, 0x00, 0x01})

	key, err := rsaKeyFromJWK(n, e)
	require.NoError(t, err)
	assert.Zero(t, key.N.Cmp(modulus))
	assert.Equal(t, 65537, key.E)

	_, err = rsaKeyFromJWK("!!!", e)
	assert.Error(t, err)
}
