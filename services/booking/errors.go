package booking

import "errors"

var (
	// ErrSlotUnavailable means the requested time does not fall inside an
	// open availability window for the business on that date.
	ErrSlotUnavailable = errors.New("requested time is not available")

	// ErrConflict means another active appointment overlaps the requested time.
	ErrConflict = errors.New("time conflicts with an existing appointment")

	// ErrInvalidTransition means the appointment status does not allow the
	// requested state change.
	ErrInvalidTransition = errors.New("invalid appointment status transition")

	// ErrNotAllowed means the caller is neither the customer nor the business
	// owner for this appointment.
	ErrNotAllowed = errors.New("not allowed to act on this appointment")

	// ErrUnknownService means the business offers no service with that ID.
	ErrUnknownService = errors.New("unknown service offering")
)
