package get_available_slots

import "errors"

var (
	// ErrOrganizationNotFound is returned when the tenant does not exist
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrFacilityNotFound is returned when the facility does not exist or
	// does not belong to the requested organization
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrAppointmentTypeNotFound is returned when the appointment type does
	// not exist at the facility
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")

	// ErrInvalidDate is returned for zero or past request dates
	ErrInvalidDate = errors.New("invalid request date")

	// ErrInvalidInput is returned for malformed request structure
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidConfiguration is returned when the appointment type carries
	// settings the calculator cannot work with
	ErrInvalidConfiguration = errors.New("invalid slot configuration")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
