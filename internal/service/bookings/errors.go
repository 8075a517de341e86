package bookings

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrFacilityNotFound = errors.New("facility not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrCannotCancel     = errors.New("booking cannot be cancelled")
	ErrInvalidStatus    = errors.New("invalid status transition")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
)
