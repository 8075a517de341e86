package create_booking

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
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput is returned for malformed request structure
	ErrInvalidInput = errors.New("invalid input data")

	// ErrFacilityClosed is returned when the day is closed by schedule or
	// by a holiday/closure
	ErrFacilityClosed = errors.New("facility is closed on this date")

	// ErrOutsideHours is returned when the requested time does not fit the
	// effective open window
	ErrOutsideHours = errors.New("requested time is outside operating hours")

	// ErrBreakTime is returned when the appointment would intersect the
	// break window and the type may not span breaks
	ErrBreakTime = errors.New("requested time falls into break time")

	// ErrSlotAtCapacity is returned when the slot has no remaining
	// concurrent capacity
	ErrSlotAtCapacity = errors.New("slot is at capacity")

	// ErrInvalidConfiguration is returned when the appointment type carries
	// settings the calculator cannot work with
	ErrInvalidConfiguration = errors.New("invalid slot configuration")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
