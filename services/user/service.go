package user

import (
	"context"
	"fmt"
	"time"

	"autodetail/models"
	"autodetail/utils"

	"go.uber.org/zap"
)

const sessionDuration = 72 * time.Hour

// CreateSession exchanges a verified Clerk session token for an app token.
// The frontend calls this after Clerk sign-in; the token's subject must
// match a record already provisioned by the webhook sync. Nothing is issued
// for a token that does not verify against Clerk's signing keys.
func (s *DefaultUserService) CreateSession(ctx context.Context, sessionToken string) (*AuthResponse, error) {
	if s.Clerk == nil {
		return nil, fmt.Errorf("session: no identity verifier configured")
	}
	clerkID, err := s.Clerk.Verify(ctx, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnverifiedSession, err)
	}

	usr, err := s.Repo.GetByClerkID(clerkID)
	if err != nil {
		return nil, fmt.Errorf("session: failed to look up user: %w", err)
	}
	if usr == nil {
		return nil, ErrUnknownUser
	}
	return s.issueSession(usr)
}

// issueSession mints an app token for usr, persists its hash and primes the
// auth cache. The stored hash is what the auth middleware falls back to when
// the Redis auth cache misses.
func (s *DefaultUserService) issueSession(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("session: failed to generate token: %w", err)
	}

	usr.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(usr); err != nil {
		return nil, fmt.Errorf("session: failed to store token hash: %w", err)
	}
	s.primeAuthCache(usr.ID, usr.TokenHash)

	return &AuthResponse{
		ID:        usr.ID,
		Token:     token,
		Email:     usr.Email,
		FirstName: usr.FirstName,
		LastName:  usr.LastName,
		Role:      usr.Role,
	}, nil
}

func (s *DefaultUserService) primeAuthCache(userID, tokenHash string) {
	// Initialized in main; nil when the server runs without Redis.
	authCache := utils.AuthCacheClient
	if authCache == nil {
		return
	}
	cacheKey := utils.AuthCachePrefix + userID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("session: failed to cache token hash", zap.Error(err))
	}
}

// RevokeSession clears the stored token hash and the auth cache entry.
func (s *DefaultUserService) RevokeSession(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("session: failed to look up user: %w", err)
	}
	usr.TokenHash = ""
	if err := s.Repo.Update(usr); err != nil {
		return fmt.Errorf("session: failed to clear token hash: %w", err)
	}
	if authCache := utils.AuthCacheClient; authCache != nil {
		cacheKey := utils.AuthCachePrefix + userID
		if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
			utils.GetLogger().Warn("session: failed to evict auth cache", zap.Error(err))
		}
	}
	return nil
}

// SelectRole completes onboarding by assigning customer or owner. The
// session token is reissued because the auth middleware reads the role from
// the token claims on a cache hit; the old token stops matching the stored
// hash and dies with the stale claim.
func (s *DefaultUserService) SelectRole(userID, role string) (*AuthResponse, error) {
	if role != models.RoleCustomer && role != models.RoleOwner {
		return nil, ErrInvalidRole
	}
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	usr.Role = role

	resp, err := s.issueSession(usr)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("user completed onboarding",
		zap.String("userID", userID), zap.String("role", role))
	return resp, nil
}

// GetUserByID retrieves a user record.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByEmail retrieves a user record by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrUnknownUser
	}
	return usr, nil
}

// UpdateUser applies the app-local profile fields a user may edit.
func (s *DefaultUserService) UpdateUser(update models.UserUpdateRequest) (*models.User, error) {
	usr, err := s.Repo.GetByID(update.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", update.ID, err)
	}
	if update.Phone != nil {
		usr.Phone = *update.Phone
	}
	if update.EmailUpdates != nil {
		usr.EmailUpdates = *update.EmailUpdates
	}
	if err := s.Repo.Update(usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// DeleteUser removes the local record.
func (s *DefaultUserService) DeleteUser(userID string) error {
	return s.Repo.Delete(userID)
}

// GetAllUsers returns every user (admin surface).
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
