// Package availability is the slot calculator: it turns a calendar date, a
// resolved hours configuration and a booking snapshot into the day's
// annotated slot list. Everything here is pure and stateless -- no I/O, no
// clocks, no mutation of inputs -- so it can run concurrently without
// locking and is trivially testable.
package availability

import (
	"fmt"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/tz"
)

// Input is the immutable snapshot one day calculation works from. The
// caller supplies everything: configuration, closures and bookings are
// fetched by the surrounding use case, never by the calculator itself.
type Input struct {
	Date     string // YYYY-MM-DD
	Timezone string // facility IANA timezone

	IntervalMinutes int
	DurationMinutes int
	BufferMinutes   int
	MaxConcurrent   int
	MaySpanBreak    bool

	OrgHours      domain.WeekOverrides
	FacilityHours domain.WeekOverrides
	TypeHours     domain.WeekOverrides

	Closures []*domain.Closure
	Bookings []*domain.Booking
}

// DayAvailability is the calculator's result for one day.
type DayAvailability struct {
	Date    string
	Weekday int // facility-local, 0 = Sunday
	Hours   domain.EffectiveDayHours
	Slots   []domain.Slot

	// ConfigIssue describes a recovered configuration problem (invalid
	// open window, malformed break). The day result is still valid -- the
	// issue is reported so the caller can log it.
	ConfigIssue *string
}

// Calculate produces the bookable slots for one day, ordered by local start
// time ascending.
//
// The weekday is resolved on the facility's local calendar, never from the
// server or UTC date: around DST transitions and midnight those disagree.
func Calculate(in Input) (*DayAvailability, error) {
	if !domain.IsSupportedSlotInterval(in.IntervalMinutes) {
		return nil, fmt.Errorf("%w: unsupported interval %d minutes", ErrConfiguration, in.IntervalMinutes)
	}

	weekday, err := tz.DateWeekday(in.Date, in.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	eff, issue, err := EffectiveHoursForDate(in.Date, in.Timezone, in.OrgHours, in.FacilityHours, in.TypeHours, in.Closures)
	if err != nil {
		return nil, err
	}

	result := &DayAvailability{
		Date:        in.Date,
		Weekday:     weekday,
		Hours:       eff,
		Slots:       []domain.Slot{},
		ConfigIssue: issue,
	}

	if !eff.Open {
		return result, nil
	}

	starts, err := GenerateSlots(eff, in.IntervalMinutes, in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	for _, start := range starts {
		slot, err := EvaluateSlot(SlotRequest{
			Date:            in.Date,
			Timezone:        in.Timezone,
			Start:           start,
			DurationMinutes: in.DurationMinutes,
			BufferMinutes:   in.BufferMinutes,
			MaxConcurrent:   in.MaxConcurrent,
			MaySpanBreak:    in.MaySpanBreak,
		}, eff, in.Bookings)
		if err != nil {
			return nil, err
		}
		result.Slots = append(result.Slots, slot)
	}

	return result, nil
}
