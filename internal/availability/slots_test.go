package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/types"
)

func starts(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateSlots_BasicGrid(t *testing.T) {
	eff := openHours("08:00", "10:00")

	slots, err := GenerateSlots(eff, 30, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30"}, starts(slots))
}

func TestGenerateSlots_PartialTrailingSlotDropped(t *testing.T) {
	// 60-minute appointments on a 30-minute grid: the last start that
	// still fits before 10:00 is 09:00.
	eff := openHours("08:00", "10:00")

	slots, err := GenerateSlots(eff, 30, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "08:30", "09:00"}, starts(slots))
}

func TestGenerateSlots_ExactFitAtClose(t *testing.T) {
	// An appointment ending exactly at closing time is kept.
	eff := openHours("09:00", "10:00")

	slots, err := GenerateSlots(eff, 60, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, starts(slots))
}

func TestGenerateSlots_BreakStartsSkipped(t *testing.T) {
	eff := openHours("08:00", "17:00")
	eff.BreakStart = ts("12:00")
	eff.BreakEnd = ts("13:00")

	slots, err := GenerateSlots(eff, 60, 60)
	require.NoError(t, err)

	got := starts(slots)
	assert.NotContains(t, got, "12:00")
	// The grid resumes at break end, and a start exactly at break end is
	// outside the break.
	assert.Contains(t, got, "13:00")
	// A slot that merely extends into the break is still generated; the
	// evaluator decides whether it is bookable.
	assert.Contains(t, got, "11:00")
}

func TestGenerateSlots_ClosedDayEmpty(t *testing.T) {
	slots, err := GenerateSlots(domain.EffectiveDayHours{Open: false}, 30, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_UnsupportedInterval(t *testing.T) {
	eff := openHours("08:00", "17:00")

	for _, interval := range []int{0, -30, 45, 90} {
		_, err := GenerateSlots(eff, interval, 30)
		assert.ErrorIs(t, err, ErrConfiguration, "interval %d", interval)
	}
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	eff := openHours("08:00", "17:00")

	_, err := GenerateSlots(eff, 30, 0)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = GenerateSlots(eff, 30, -15)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	eff := openHours("08:00", "09:00")

	slots, err := GenerateSlots(eff, 30, 120)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_SupportedIntervals(t *testing.T) {
	eff := openHours("08:00", "09:00")

	for interval, wantCount := range map[int]int{15: 4, 30: 2, 60: 1} {
		slots, err := GenerateSlots(eff, interval, 15)
		require.NoError(t, err)

		switch interval {
		case 15:
			assert.Len(t, slots, wantCount)
		case 30:
			// 08:00 and 08:30 fit a 15-minute appointment; 09:00 does not start.
			assert.Equal(t, []string{"08:00", "08:30"}, starts(slots))
		case 60:
			assert.Equal(t, []string{"08:00"}, starts(slots))
		}
	}
}

func TestGenerateSlots_LateWindowStopsAtMidnight(t *testing.T) {
	// The last grid step would run past midnight; generation stops
	// instead of wrapping to the next day.
	eff := openHours("23:00", "23:59")

	slots, err := GenerateSlots(eff, 30, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"23:00"}, starts(slots))
}
