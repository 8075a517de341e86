package models

import (
	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/types"
)

// ScheduleConfig is a facility's full schedule configuration: every
// hours override that applies to it and all closures in the requested
// date range.
type ScheduleConfig struct {
	OrganizationID int64
	FacilityID     int64
	Timezone       string

	HoursOverrides []*domain.HoursOverride
	Closures       []*domain.Closure
}

// HoursOverrideInput describes one weekday override to create or
// replace. AppointmentTypeID narrows it to a single appointment type;
// nil applies it to the whole facility.
type HoursOverrideInput struct {
	AppointmentTypeID *int64
	Weekday           int

	Open       *bool
	Start      *types.TimeString
	End        *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// ClosureInput describes one closure period to create. Dates are
// inclusive YYYY-MM-DD strings, interpreted as facility-local days.
type ClosureInput struct {
	AppointmentTypeID *int64
	StartDate         string
	EndDate           string
	Reason            string
}
