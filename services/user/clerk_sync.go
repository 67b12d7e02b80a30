package user

import (
	"encoding/json"
	"fmt"

	"autodetail/models"
	"autodetail/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SyncFromClerk applies a verified Clerk webhook event to the local user
// store. user.created and user.updated upsert; user.deleted removes the
// record. Upserts are idempotent so webhook retries are safe.
func (s *DefaultUserService) SyncFromClerk(event models.ClerkEvent) error {
	logger := utils.GetLogger()

	switch event.Type {
	case "user.created", "user.updated":
		var data models.ClerkUserData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return fmt.Errorf("clerk sync: failed to decode %s payload: %w", event.Type, err)
		}
		return s.upsertFromClerk(data)

	case "user.deleted":
		var data models.ClerkUserData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return fmt.Errorf("clerk sync: failed to decode user.deleted payload: %w", err)
		}
		if err := s.Repo.DeleteByClerkID(data.ID); err != nil {
			return fmt.Errorf("clerk sync: failed to delete user %s: %w", data.ID, err)
		}
		logger.Info("clerk sync: user deleted", zap.String("clerkID", data.ID))
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, event.Type)
	}
}

func (s *DefaultUserService) upsertFromClerk(data models.ClerkUserData) error {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByClerkID(data.ID)
	if err != nil {
		return fmt.Errorf("clerk sync: failed to look up user %s: %w", data.ID, err)
	}

	if existing == nil {
		usr := &models.User{
			ID:        uuid.New().String(),
			ClerkID:   data.ID,
			Email:     data.PrimaryEmail(),
			FirstName: data.FirstName,
			LastName:  data.LastName,
			ImageURL:  data.ImageURL,
		}
		if len(data.PhoneNumbers) > 0 {
			usr.Phone = data.PhoneNumbers[0].PhoneNumber
		}
		if err := s.Repo.Create(usr); err != nil {
			return fmt.Errorf("clerk sync: failed to create user %s: %w", data.ID, err)
		}
		logger.Info("clerk sync: user created",
			zap.String("clerkID", data.ID), zap.String("userID", usr.ID))
		return nil
	}

	// Identity fields follow Clerk; app-local state (role, preferences) stays.
	existing.Email = data.PrimaryEmail()
	existing.FirstName = data.FirstName
	existing.LastName = data.LastName
	existing.ImageURL = data.ImageURL
	if len(data.PhoneNumbers) > 0 && existing.Phone == "" {
		existing.Phone = data.PhoneNumbers[0].PhoneNumber
	}
	if err := s.Repo.Update(existing); err != nil {
		return fmt.Errorf("clerk sync: failed to update user %s: %w", data.ID, err)
	}
	logger.Info("clerk sync: user updated", zap.String("clerkID", data.ID))
	return nil
}
