package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulport/DockSlotService/internal/domain"
)

func TestCalculate_TypicalReceivingDay(t *testing.T) {
	// Monday 08:00-17:00 with a 12:00-13:00 break, 60-minute appointments
	// on a 60-minute grid, one dock, an existing booking at 10:00.
	in := Input{
		Date:            "2026-03-09", // Monday
		Timezone:        "UTC",
		IntervalMinutes: 60,
		DurationMinutes: 60,
		MaxConcurrent:   1,
		OrgHours: week(func() *domain.DayHoursOverride {
			d := openDay("08:00", "17:00")
			d.BreakStart = ts("12:00")
			d.BreakEnd = ts("13:00")
			return d
		}()),
		Bookings: []*domain.Booking{utcBooking("10:00", "11:00")},
	}

	result, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Weekday)
	assert.True(t, result.Hours.Open)
	assert.Nil(t, result.ConfigIssue)

	var got []string
	available := map[string]bool{}
	for _, slot := range result.Slots {
		got = append(got, slot.StartTime.String())
		available[slot.StartTime.String()] = slot.Available
	}

	// 12:00 starts inside the break and is not on the grid; 16:00 is the
	// last start whose appointment still ends by 17:00.
	assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}, got)

	// 11:00 ends exactly at break start and stays bookable.
	assert.True(t, available["11:00"])

	// The 10:00 slot conflicts with the existing booking.
	assert.False(t, available["10:00"])
	for _, slot := range result.Slots {
		if slot.StartTime == "10:00" {
			require.NotNil(t, slot.Reason)
			assert.Equal(t, domain.ReasonAtCapacity, *slot.Reason)
			assert.Equal(t, 0, slot.RemainingCapacity)
		} else {
			assert.True(t, slot.Available, "slot %s", slot.StartTime)
		}
	}
}

func TestCalculate_ClosedWeekday(t *testing.T) {
	// Hours configured for Monday only; Sunday resolves closed with an
	// empty slot list, not an error.
	var org domain.WeekOverrides
	org[domain.Monday] = openDay("08:00", "17:00")

	result, err := Calculate(Input{
		Date:            "2026-03-08", // Sunday
		Timezone:        "UTC",
		IntervalMinutes: 30,
		DurationMinutes: 30,
		MaxConcurrent:   1,
		OrgHours:        org,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Weekday)
	assert.False(t, result.Hours.Open)
	assert.Empty(t, result.Slots)
}

func TestCalculate_ClosureWinsOverOpenHours(t *testing.T) {
	result, err := Calculate(Input{
		Date:            "2026-12-25", // Friday
		Timezone:        "UTC",
		IntervalMinutes: 30,
		DurationMinutes: 30,
		MaxConcurrent:   1,
		OrgHours:        week(openDay("08:00", "17:00")),
		Closures: []*domain.Closure{
			{StartDate: date("2026-12-24"), EndDate: date("2026-12-26"), Reason: "Christmas"},
		},
	})
	require.NoError(t, err)

	assert.False(t, result.Hours.Open)
	require.NotNil(t, result.Hours.ClosedReason)
	assert.Equal(t, "Christmas", *result.Hours.ClosedReason)
	assert.Empty(t, result.Slots)
}

func TestCalculate_RecoveredConfigReportsIssue(t *testing.T) {
	result, err := Calculate(Input{
		Date:            "2026-03-09",
		Timezone:        "UTC",
		IntervalMinutes: 30,
		DurationMinutes: 30,
		MaxConcurrent:   1,
		OrgHours:        week(openDay("17:00", "08:00")), // inverted window
	})
	require.NoError(t, err)

	assert.False(t, result.Hours.Open)
	assert.Empty(t, result.Slots)
	require.NotNil(t, result.ConfigIssue)
	assert.Contains(t, *result.ConfigIssue, "invalid open window")
}

func TestCalculate_WeekdayInFacilityTimezone(t *testing.T) {
	// Only Monday is open. 2026-03-09 is Monday in Auckland exactly as it
	// is in UTC; the facility's local calendar decides.
	var org domain.WeekOverrides
	org[domain.Monday] = openDay("08:00", "10:00")

	result, err := Calculate(Input{
		Date:            "2026-03-09",
		Timezone:        "Pacific/Auckland",
		IntervalMinutes: 60,
		DurationMinutes: 60,
		MaxConcurrent:   1,
		OrgHours:        org,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Monday, result.Weekday)
	require.Len(t, result.Slots, 2)

	// 08:00 Auckland on 2026-03-09 is 19:00 UTC on 2026-03-08 (NZDT, +13).
	assert.Equal(t, "2026-03-08T19:00:00Z", result.Slots[0].StartsAt.UTC().Format("2006-01-02T15:04:05Z"))
}

func TestCalculate_UnsupportedInterval(t *testing.T) {
	_, err := Calculate(Input{
		Date:            "2026-03-09",
		Timezone:        "UTC",
		IntervalMinutes: 45,
		DurationMinutes: 30,
		MaxConcurrent:   1,
		OrgHours:        week(openDay("08:00", "17:00")),
	})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCalculate_InvalidDateOrTimezone(t *testing.T) {
	_, err := Calculate(Input{
		Date:            "2026-02-30",
		Timezone:        "UTC",
		IntervalMinutes: 30,
		DurationMinutes: 30,
		MaxConcurrent:   1,
		OrgHours:        week(openDay("08:00", "17:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Calculate(Input{
		Date:            "2026-03-09",
		Timezone:        "Nowhere/Void",
		IntervalMinutes: 30,
		DurationMinutes: 30,
		MaxConcurrent:   1,
		OrgHours:        week(openDay("08:00", "17:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
