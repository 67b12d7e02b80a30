package models

import "time"

// User roles. Role is empty until the user completes onboarding.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// User represents a platform account. Identity lives in Clerk; this record is
// synced from Clerk webhooks and carries the app-local state (role, session).
type User struct {
	ID           string    `bson:"id" json:"id"`
	ClerkID      string    `bson:"clerkId" json:"clerkId"`
	Email        string    `bson:"email" json:"email"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ImageURL     string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Role         string    `bson:"role,omitempty" json:"role,omitempty"`
	EmailUpdates bool      `bson:"emailUpdates" json:"emailUpdates"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdateRequest carries the profile fields a user may edit directly.
type UserUpdateRequest struct {
	ID           string `json:"id"`
	Phone        *string `json:"phone,omitempty"`
	EmailUpdates *bool   `json:"emailUpdates,omitempty"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
