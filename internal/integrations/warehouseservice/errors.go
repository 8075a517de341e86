package warehouseservice

import "errors"

var (
	// ErrOrganizationNotFound is returned when the organization does not exist
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrFacilityNotFound is returned when the facility does not exist
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrAppointmentTypeNotFound is returned when the appointment type does not exist
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")

	// ErrInvalidResponse is returned on unexpected upstream responses
	ErrInvalidResponse = errors.New("warehouseservice: invalid response")

	// ErrInternal is returned on transport-level failures
	ErrInternal = errors.New("warehouseservice: internal error")
)
