package models

import "encoding/json"

// ClerkEvent is the envelope Clerk posts to our webhook endpoint.
type ClerkEvent struct {
	Type string          `json:"type"` // "user.created", "user.updated", "user.deleted"
	Data json.RawMessage `json:"data"`
}

// ClerkEmailAddress is one email entry on a Clerk user object.
type ClerkEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// ClerkPhoneNumber is one phone entry on a Clerk user object.
type ClerkPhoneNumber struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

// ClerkUserData is the user payload inside user.* events.
type ClerkUserData struct {
	ID                    string              `json:"id"`
	FirstName             string              `json:"first_name"`
	LastName              string              `json:"last_name"`
	ImageURL              string              `json:"image_url"`
	PrimaryEmailAddressID string              `json:"primary_email_address_id"`
	EmailAddresses        []ClerkEmailAddress `json:"email_addresses"`
	PhoneNumbers          []ClerkPhoneNumber  `json:"phone_numbers"`
}

// PrimaryEmail returns the address marked primary, falling back to the first.
func (d *ClerkUserData) PrimaryEmail() string {
	for _, e := range d.EmailAddresses {
		if e.ID == d.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	if len(d.EmailAddresses) > 0 {
		return d.EmailAddresses[0].EmailAddress
	}
	return ""
}
