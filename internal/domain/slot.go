package domain

import (
	"time"

	"github.com/haulport/DockSlotService/pkg/types"
)

// UnavailabilityReason says why a slot (or a requested time) cannot be
// booked. The taxonomy is part of the API contract: clients render
// user-facing messaging from it.
type UnavailabilityReason string

const (
	ReasonOutsideHours UnavailabilityReason = "outside_hours"
	ReasonBreakTime    UnavailabilityReason = "break_time"
	ReasonClosed       UnavailabilityReason = "closed"
	ReasonAtCapacity   UnavailabilityReason = "at_capacity"
)

// Slot is one candidate dock appointment start within a day's open window,
// annotated with availability.
type Slot struct {
	StartTime         types.TimeString // facility-local wall clock
	StartsAt          time.Time        // absolute instant
	DurationMinutes   int
	Available         bool
	RemainingCapacity int
	TotalCapacity     int
	Reason            *UnavailabilityReason // set only when unavailable
}

// IsFull returns true if the slot has no remaining capacity.
func (s *Slot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// IsPartiallyBooked returns true if some but not all concurrent capacity
// is taken.
func (s *Slot) IsPartiallyBooked() bool {
	return s.RemainingCapacity > 0 && s.RemainingCapacity < s.TotalCapacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100).
func (s *Slot) OccupancyRate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	occupied := s.TotalCapacity - s.RemainingCapacity
	return float64(occupied) / float64(s.TotalCapacity) * 100
}
