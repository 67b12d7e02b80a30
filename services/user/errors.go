package user

import "errors"

var (
	// ErrUnknownUser signals that no local record matches the identity.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInvalidRole signals an onboarding role outside {customer, owner}.
	ErrInvalidRole = errors.New("role must be customer or owner")
	// ErrUnknownEvent signals an unhandled Clerk webhook event type.
	ErrUnknownEvent = errors.New("unhandled webhook event type")
	// ErrUnverifiedSession signals a Clerk session token that failed
	// verification. No app token is issued without it.
	ErrUnverifiedSession = errors.New("session token could not be verified")
)
