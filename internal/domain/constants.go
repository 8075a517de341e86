package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinAppointmentDurationMinutes = 5
	MaxAppointmentDurationMinutes = 480 // 8 hours
	MinBufferMinutes              = 0
	MaxBufferMinutes              = 120
	MinConcurrentBookings         = 1
	MaxConcurrentBookings         = 100
	MaxNotesLength                = 500
	MaxCancellationReasonLength   = 500
	MaxClosureReasonLength        = 200
)

// SupportedSlotIntervals lists the slot grid steps the generator accepts.
var SupportedSlotIntervals = []int{15, 30, 60}

// IsSupportedSlotInterval reports whether minutes is a valid grid step.
func IsSupportedSlotInterval(minutes int) bool {
	for _, v := range SupportedSlotIntervals {
		if v == minutes {
			return true
		}
	}
	return false
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekday indices, facility-local, Sunday = 0.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// InactiveStatuses are excluded from overlap counting when computing
// remaining slot capacity.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCarrier,
	StatusCancelledByFacility,
	StatusNoShow,
}

// ActiveStatuses occupy dock capacity.
var ActiveStatuses = []BookingStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusArrived,
	StatusCompleted,
}
