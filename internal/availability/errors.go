package availability

import "errors"

var (
	// ErrConfiguration is returned for structurally invalid calculator input
	// that cannot be recovered by closing the day (e.g. unsupported slot
	// interval). Per-day hours problems are not errors: the day is closed
	// and the issue is reported on the result instead.
	ErrConfiguration = errors.New("invalid slot configuration")

	// ErrInvalidDate is returned when the requested date/timezone pair
	// cannot be resolved.
	ErrInvalidDate = errors.New("invalid date")
)
