package models

import "time"

// ServiceOffering is one detailing service a business sells.
type ServiceOffering struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64 `bson:"price" json:"price"`
}

// StaffMember is an employee attached to a business profile.
type StaffMember struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Role   string `bson:"role,omitempty" json:"role,omitempty"` // e.g. "detailer", "manager"
	Email  string `bson:"email,omitempty" json:"email,omitempty"`
	Phone  string `bson:"phone,omitempty" json:"phone,omitempty"`
	Active bool   `bson:"active" json:"active"`
}

// Business is an owner's detailing business profile.
type Business struct {
	ID            string            `bson:"id" json:"id"`
	OwnerID       string            `bson:"ownerId" json:"ownerId"`
	Name          string            `bson:"name" json:"name"`
	Description   string            `bson:"description,omitempty" json:"description,omitempty"`
	Address       string            `bson:"address,omitempty" json:"address,omitempty"`
	City          string            `bson:"city,omitempty" json:"city,omitempty"`
	Phone         string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string            `bson:"email,omitempty" json:"email,omitempty"`
	Services      []ServiceOffering `bson:"services,omitempty" json:"services,omitempty"`
	Staff         []StaffMember     `bson:"staff,omitempty" json:"staff,omitempty"`
	BusinessHours BusinessHours     `bson:"businessHours,omitempty" json:"businessHours,omitempty"`
	Active        bool              `bson:"active" json:"active"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// BusinessUpdateRequest carries the profile fields an owner may change.
// Pointer fields distinguish "leave alone" from "set to zero"; hours and
// staff have their own endpoints.
type BusinessUpdateRequest struct {
	ID          string            `json:"-"`
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Address     *string           `json:"address,omitempty"`
	City        *string           `json:"city,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Services    []ServiceOffering `json:"services,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

// StaffUpdateRequest carries the staff fields an owner may change.
type StaffUpdateRequest struct {
	ID     string  `json:"-"`
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// ServiceByID returns the offering with the given ID, or nil.
func (b *Business) ServiceByID(id string) *ServiceOffering {
	for i := range b.Services {
		if b.Services[i].ID == id {
			return &b.Services[i]
		}
	}
	return nil
}
