package carrierservice

import "errors"

var (
	// ErrTruckNotFound is returned when the carrier has no selected truck
	ErrTruckNotFound = errors.New("selected truck not found")

	// ErrInvalidResponse is returned on unexpected upstream responses
	ErrInvalidResponse = errors.New("carrierservice: invalid response")

	// ErrServiceDegraded is returned when CarrierService is unreachable and
	// the caller should proceed without truck data
	ErrServiceDegraded = errors.New("carrierservice: service degraded")

	// ErrInternal is returned on transport-level failures
	ErrInternal = errors.New("carrierservice: internal error")
)
