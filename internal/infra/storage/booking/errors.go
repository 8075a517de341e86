package booking

import "errors"

var (
	// ErrBuildQuery is returned when squirrel fails to build SQL
	ErrBuildQuery = errors.New("booking storage: build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("booking storage: execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking storage: scan row")

	// ErrBookingNotFound is returned when a booking does not exist
	ErrBookingNotFound = errors.New("booking not found")
)
