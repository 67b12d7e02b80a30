package user

import (
	"context"

	userRepo "autodetail/database/repository/user"
	"autodetail/models"
)

// UserService manages local user records and sessions. Identity itself lives
// in Clerk; records here are provisioned from webhook events.
type UserService interface {
	// Webhook sync
	SyncFromClerk(event models.ClerkEvent) error

	// Onboarding. The session token is reissued so the role claim is
	// current on the cache-hit auth path.
	SelectRole(userID, role string) (*AuthResponse, error)

	// Sessions
	CreateSession(ctx context.Context, sessionToken string) (*AuthResponse, error)
	RevokeSession(userID string) error

	// User management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(update models.UserUpdateRequest) (*models.User, error)
	DeleteUser(userID string) error
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Clerk ClerkVerifier
}

// AuthResponse contains the user's ID, session token and profile summary.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
}
