package schedule

import "errors"

var (
	ErrFacilityNotFound = errors.New("facility not found")
	ErrOverrideNotFound = errors.New("hours override not found")
	ErrClosureNotFound  = errors.New("closure not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
)
