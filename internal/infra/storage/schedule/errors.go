package schedule

import "errors"

var (
	// ErrBuildQuery is returned when squirrel fails to build SQL
	ErrBuildQuery = errors.New("schedule storage: build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("schedule storage: execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("schedule storage: scan row")

	// ErrOverrideNotFound is returned when an hours override does not exist
	ErrOverrideNotFound = errors.New("hours override not found")

	// ErrClosureNotFound is returned when a closure does not exist
	ErrClosureNotFound = errors.New("closure not found")
)
