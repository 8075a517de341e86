package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulport/DockSlotService/internal/domain"
)

// utcBooking builds an active booking occupying [start, end) on 2026-03-09 UTC.
func utcBooking(start, end string) *domain.Booking {
	s, err := time.Parse("2006-01-02 15:04", "2026-03-09 "+start)
	if err != nil {
		panic(err)
	}
	e, err := time.Parse("2006-01-02 15:04", "2026-03-09 "+end)
	if err != nil {
		panic(err)
	}
	return &domain.Booking{
		Status:   domain.StatusScheduled,
		StartsAt: s,
		EndsAt:   e,
	}
}

func slotReq(start string) SlotRequest {
	return SlotRequest{
		Date:            "2026-03-09",
		Timezone:        "UTC",
		Start:           *ts(start),
		DurationMinutes: 60,
		MaxConcurrent:   1,
	}
}

func TestEvaluateSlot_Available(t *testing.T) {
	slot, err := EvaluateSlot(slotReq("09:00"), openHours("08:00", "17:00"), nil)
	require.NoError(t, err)

	assert.True(t, slot.Available)
	assert.Nil(t, slot.Reason)
	assert.Equal(t, 1, slot.RemainingCapacity)
	assert.Equal(t, 1, slot.TotalCapacity)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), slot.StartsAt.UTC())
}

func TestEvaluateSlot_ClosedDay(t *testing.T) {
	reason := "facility closure"
	eff := domain.EffectiveDayHours{Open: false, ClosedReason: &reason}

	slot, err := EvaluateSlot(slotReq("09:00"), eff, nil)
	require.NoError(t, err)
	assert.False(t, slot.Available)
	require.NotNil(t, slot.Reason)
	assert.Equal(t, domain.ReasonClosed, *slot.Reason)
}

func TestEvaluateSlot_ClosedWeekdayReadsOutsideHours(t *testing.T) {
	// Closed by schedule, not by a closure: the reason is outside_hours.
	slot, err := EvaluateSlot(slotReq("09:00"), domain.EffectiveDayHours{Open: false}, nil)
	require.NoError(t, err)
	require.NotNil(t, slot.Reason)
	assert.Equal(t, domain.ReasonOutsideHours, *slot.Reason)
}

func TestEvaluateSlot_OutsideHours(t *testing.T) {
	eff := openHours("08:00", "17:00")

	for _, start := range []string{"07:00", "16:30", "17:00"} {
		slot, err := EvaluateSlot(slotReq(start), eff, nil)
		require.NoError(t, err)
		assert.False(t, slot.Available, "start %s", start)
		require.NotNil(t, slot.Reason)
		assert.Equal(t, domain.ReasonOutsideHours, *slot.Reason, "start %s", start)
	}

	// Ending exactly at close is inside hours.
	slot, err := EvaluateSlot(slotReq("16:00"), eff, nil)
	require.NoError(t, err)
	assert.True(t, slot.Available)
}

func TestEvaluateSlot_BreakSpanToggle(t *testing.T) {
	eff := openHours("08:00", "17:00")
	eff.BreakStart = ts("12:00")
	eff.BreakEnd = ts("13:00")

	// 11:30 + 60m crosses the break.
	req := slotReq("11:30")

	slot, err := EvaluateSlot(req, eff, nil)
	require.NoError(t, err)
	assert.False(t, slot.Available)
	require.NotNil(t, slot.Reason)
	assert.Equal(t, domain.ReasonBreakTime, *slot.Reason)

	req.MaySpanBreak = true
	slot, err = EvaluateSlot(req, eff, nil)
	require.NoError(t, err)
	assert.True(t, slot.Available)
}

func TestEvaluateSlot_TouchingBreakEndpointsAllowed(t *testing.T) {
	eff := openHours("08:00", "17:00")
	eff.BreakStart = ts("12:00")
	eff.BreakEnd = ts("13:00")

	// Ends exactly at break start.
	slot, err := EvaluateSlot(slotReq("11:00"), eff, nil)
	require.NoError(t, err)
	assert.True(t, slot.Available)

	// Starts exactly at break end.
	slot, err = EvaluateSlot(slotReq("13:00"), eff, nil)
	require.NoError(t, err)
	assert.True(t, slot.Available)
}

func TestEvaluateSlot_CapacityCounting(t *testing.T) {
	eff := openHours("08:00", "17:00")
	req := slotReq("10:00")
	req.MaxConcurrent = 2

	// One overlapping booking leaves one spot.
	slot, err := EvaluateSlot(req, eff, []*domain.Booking{utcBooking("10:00", "11:00")})
	require.NoError(t, err)
	assert.True(t, slot.Available)
	assert.Equal(t, 1, slot.RemainingCapacity)

	// Two overlapping bookings exhaust capacity.
	slot, err = EvaluateSlot(req, eff, []*domain.Booking{
		utcBooking("10:00", "11:00"),
		utcBooking("09:30", "10:30"),
	})
	require.NoError(t, err)
	assert.False(t, slot.Available)
	assert.Equal(t, 0, slot.RemainingCapacity)
	require.NotNil(t, slot.Reason)
	assert.Equal(t, domain.ReasonAtCapacity, *slot.Reason)
}

func TestEvaluateSlot_RemainingCapacitySaturatesAtZero(t *testing.T) {
	eff := openHours("08:00", "17:00")
	req := slotReq("10:00")

	// Three overlaps against capacity one never reports negative.
	slot, err := EvaluateSlot(req, eff, []*domain.Booking{
		utcBooking("10:00", "11:00"),
		utcBooking("10:00", "11:00"),
		utcBooking("10:00", "11:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, slot.RemainingCapacity)
}

func TestEvaluateSlot_BufferExtendsOccupancy(t *testing.T) {
	eff := openHours("08:00", "17:00")

	// A booking at 11:00 does not overlap a bufferless 10:00-11:00 slot.
	req := slotReq("10:00")
	slot, err := EvaluateSlot(req, eff, []*domain.Booking{utcBooking("11:00", "12:00")})
	require.NoError(t, err)
	assert.True(t, slot.Available)

	// With a 15-minute buffer the occupied range reaches 11:15.
	req.BufferMinutes = 15
	slot, err = EvaluateSlot(req, eff, []*domain.Booking{utcBooking("11:00", "12:00")})
	require.NoError(t, err)
	assert.False(t, slot.Available)
	require.NotNil(t, slot.Reason)
	assert.Equal(t, domain.ReasonAtCapacity, *slot.Reason)
}

func TestEvaluateSlot_InactiveBookingsIgnored(t *testing.T) {
	eff := openHours("08:00", "17:00")

	cancelled := utcBooking("10:00", "11:00")
	cancelled.Status = domain.StatusCancelledByCarrier
	noShow := utcBooking("10:00", "11:00")
	noShow.Status = domain.StatusNoShow

	slot, err := EvaluateSlot(slotReq("10:00"), eff, []*domain.Booking{cancelled, noShow})
	require.NoError(t, err)
	assert.True(t, slot.Available)
	assert.Equal(t, 1, slot.RemainingCapacity)
}

func TestEvaluateSlot_ConfigurationErrors(t *testing.T) {
	eff := openHours("08:00", "17:00")

	req := slotReq("10:00")
	req.MaxConcurrent = 0
	_, err := EvaluateSlot(req, eff, nil)
	assert.ErrorIs(t, err, ErrConfiguration)

	req = slotReq("10:00")
	req.DurationMinutes = 0
	_, err = EvaluateSlot(req, eff, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCountOverlappingBookings_StrictBoundaries(t *testing.T) {
	window := func(s, e string) (time.Time, time.Time) {
		b := utcBooking(s, e)
		return b.StartsAt, b.EndsAt
	}

	start, end := window("10:00", "11:00")

	tests := []struct {
		name    string
		booking *domain.Booking
		want    int
	}{
		{name: "identical range", booking: utcBooking("10:00", "11:00"), want: 1},
		{name: "overlapping tail", booking: utcBooking("09:30", "10:30"), want: 1},
		{name: "overlapping head", booking: utcBooking("10:30", "11:30"), want: 1},
		{name: "contained", booking: utcBooking("10:15", "10:45"), want: 1},
		{name: "containing", booking: utcBooking("09:00", "12:00"), want: 1},
		{name: "ends at start", booking: utcBooking("09:00", "10:00"), want: 0},
		{name: "starts at end", booking: utcBooking("11:00", "12:00"), want: 0},
		{name: "disjoint", booking: utcBooking("13:00", "14:00"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountOverlappingBookings(start, end, []*domain.Booking{tt.booking})
			assert.Equal(t, tt.want, got)
		})
	}
}
