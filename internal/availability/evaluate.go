package availability

import (
	"fmt"
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/ptr"
	"github.com/haulport/DockSlotService/pkg/tz"
	"github.com/haulport/DockSlotService/pkg/types"
)

// SlotRequest describes one candidate appointment time to evaluate. It is
// used both for every generated slot of a day and for the single requested
// time re-validated inside the booking-creation transaction.
type SlotRequest struct {
	Date            string // YYYY-MM-DD, facility-local
	Timezone        string // IANA name of the facility timezone
	Start           types.TimeString
	DurationMinutes int
	BufferMinutes   int
	MaxConcurrent   int
	MaySpanBreak    bool
}

// EvaluateSlot decides whether the candidate time is bookable against the
// effective hours and the booking snapshot. It is a pure function of its
// inputs; the booking snapshot is read, never mutated.
//
// Unavailability reasons are ranked: closed day, outside hours, break time,
// at capacity. Remaining capacity is only computed once the schedule checks
// pass; reporting capacity for a slot that is closed anyway would mislead.
func EvaluateSlot(req SlotRequest, eff domain.EffectiveDayHours, bookings []*domain.Booking) (domain.Slot, error) {
	startsAt, err := tz.LocalToInstant(req.Date, req.Start, req.Timezone)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	slot := domain.Slot{
		StartTime:       req.Start,
		StartsAt:        startsAt,
		DurationMinutes: req.DurationMinutes,
		TotalCapacity:   req.MaxConcurrent,
	}

	if req.MaxConcurrent < domain.MinConcurrentBookings {
		return domain.Slot{}, fmt.Errorf("%w: max concurrent %d", ErrConfiguration, req.MaxConcurrent)
	}
	if req.DurationMinutes <= 0 {
		return domain.Slot{}, fmt.Errorf("%w: non-positive duration %d", ErrConfiguration, req.DurationMinutes)
	}

	if !eff.Open {
		if eff.ClosedReason != nil {
			slot.Reason = ptr.Ptr(domain.ReasonClosed)
		} else {
			slot.Reason = ptr.Ptr(domain.ReasonOutsideHours)
		}
		return slot, nil
	}

	slotEnd, err := req.Start.AddMinutes(req.DurationMinutes)
	if err != nil || req.Start.IsBefore(eff.Start) || slotEnd.IsAfter(eff.End) {
		slot.Reason = ptr.Ptr(domain.ReasonOutsideHours)
		return slot, nil
	}

	if !req.MaySpanBreak && intersectsBreak(eff, req.Start, slotEnd) {
		slot.Reason = ptr.Ptr(domain.ReasonBreakTime)
		return slot, nil
	}

	// The appointment blocks the dock for duration plus buffer.
	occupiedEnd := startsAt.Add(time.Duration(req.DurationMinutes+req.BufferMinutes) * time.Minute)
	overlapping := CountOverlappingBookings(startsAt, occupiedEnd, bookings)

	remaining := req.MaxConcurrent - overlapping
	if remaining < 0 {
		remaining = 0
	}
	slot.RemainingCapacity = remaining

	if remaining == 0 {
		slot.Reason = ptr.Ptr(domain.ReasonAtCapacity)
		return slot, nil
	}

	slot.Available = true
	return slot, nil
}

// intersectsBreak reports whether [start, end) truly intersects the break
// window. Touching endpoints are not an intersection: an appointment ending
// exactly at break start, or starting exactly at break end, is fine.
func intersectsBreak(eff domain.EffectiveDayHours, start, end types.TimeString) bool {
	if !eff.HasBreak() {
		return false
	}
	return start.IsBefore(*eff.BreakEnd) && eff.BreakStart.IsBefore(end)
}

// CountOverlappingBookings counts active bookings whose occupied range
// intersects [start, end). Strict open-interval comparison on absolute
// instants: back-to-back bookings do not conflict.
func CountOverlappingBookings(start, end time.Time, bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if booking == nil || !booking.IsActive() {
			continue
		}
		if booking.Overlaps(start, end) {
			count++
		}
	}
	return count
}
