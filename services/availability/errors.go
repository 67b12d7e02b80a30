package availability

import "errors"

var (
	// ErrInvalidInput signals a malformed date or a business record missing
	// the fields the resolver requires. Callers match it with errors.Is.
	ErrInvalidInput = errors.New("invalid availability input")
	// ErrNotFound signals that no business matches the ID.
	ErrNotFound = errors.New("business not found")
)
