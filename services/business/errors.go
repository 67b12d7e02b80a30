package business

import "errors"

var (
	// ErrInvalidHours signals malformed business hours or slot definitions.
	ErrInvalidHours = errors.New("invalid business hours")
	// ErrNotOwner signals that the caller does not own the business.
	ErrNotOwner = errors.New("caller does not own this business")
	// ErrAlreadyExists signals that the owner already has a business profile.
	ErrAlreadyExists = errors.New("owner already has a business profile")
	// ErrNotFound signals that no business matches the ID.
	ErrNotFound = errors.New("business not found")
	// ErrStaffNotFound signals that no staff member matches the ID.
	ErrStaffNotFound = errors.New("staff member not found")
)
