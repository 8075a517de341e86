package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulport/DockSlotService/internal/domain"
)

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func openHours(start, end string) domain.EffectiveDayHours {
	return domain.EffectiveDayHours{
		Open:  true,
		Start: *ts(start),
		End:   *ts(end),
	}
}

func TestApplyClosures_ClosesCoveredDate(t *testing.T) {
	closures := []*domain.Closure{
		{
			OrganizationID: 1,
			StartDate:      date("2026-12-24"),
			EndDate:        date("2026-12-26"),
			Reason:         "Christmas",
		},
	}

	eff := ApplyClosures(openHours("08:00", "17:00"), date("2026-12-25"), closures)
	assert.False(t, eff.Open)
	require.NotNil(t, eff.ClosedReason)
	assert.Equal(t, "Christmas", *eff.ClosedReason)
}

func TestApplyClosures_BoundaryDatesInclusive(t *testing.T) {
	closures := []*domain.Closure{
		{StartDate: date("2026-12-24"), EndDate: date("2026-12-26"), Reason: "holidays"},
	}

	assert.False(t, ApplyClosures(openHours("08:00", "17:00"), date("2026-12-24"), closures).Open)
	assert.False(t, ApplyClosures(openHours("08:00", "17:00"), date("2026-12-26"), closures).Open)
	assert.True(t, ApplyClosures(openHours("08:00", "17:00"), date("2026-12-23"), closures).Open)
	assert.True(t, ApplyClosures(openHours("08:00", "17:00"), date("2026-12-27"), closures).Open)
}

func TestApplyClosures_Idempotent(t *testing.T) {
	closures := []*domain.Closure{
		{StartDate: date("2026-07-04"), EndDate: date("2026-07-04"), Reason: "Independence Day"},
	}

	once := ApplyClosures(openHours("08:00", "17:00"), date("2026-07-04"), closures)
	twice := ApplyClosures(once, date("2026-07-04"), closures)
	assert.Equal(t, once, twice)
}

func TestApplyClosures_ClosedDayStaysClosed(t *testing.T) {
	// A closure never reopens anything; a closed day passes through.
	eff := domain.EffectiveDayHours{Open: false}
	out := ApplyClosures(eff, date("2026-07-04"), nil)
	assert.False(t, out.Open)
	assert.Nil(t, out.ClosedReason)
}

func TestApplyClosures_DefaultReasonByLevel(t *testing.T) {
	facilityID := int64(7)
	typeID := int64(9)

	tests := []struct {
		name    string
		closure *domain.Closure
		want    string
	}{
		{
			name:    "organization level",
			closure: &domain.Closure{StartDate: date("2026-01-01"), EndDate: date("2026-01-01")},
			want:    "organization holiday",
		},
		{
			name: "facility level",
			closure: &domain.Closure{
				FacilityID: &facilityID,
				StartDate:  date("2026-01-01"), EndDate: date("2026-01-01"),
			},
			want: "facility closure",
		},
		{
			name: "appointment type level",
			closure: &domain.Closure{
				FacilityID: &facilityID, AppointmentTypeID: &typeID,
				StartDate: date("2026-01-01"), EndDate: date("2026-01-01"),
			},
			want: "appointment type blackout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := ApplyClosures(openHours("08:00", "17:00"), date("2026-01-01"), []*domain.Closure{tt.closure})
			require.NotNil(t, eff.ClosedReason)
			assert.Equal(t, tt.want, *eff.ClosedReason)
		})
	}
}

func TestApplyClosures_NilEntriesSkipped(t *testing.T) {
	closures := []*domain.Closure{nil, {StartDate: date("2026-01-02"), EndDate: date("2026-01-02"), Reason: ""}}
	eff := ApplyClosures(openHours("08:00", "17:00"), date("2026-01-01"), closures)
	assert.True(t, eff.Open)
}
