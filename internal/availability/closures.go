package availability

import (
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/ptr"
)

// ApplyClosures forces the day closed when any closure covers the date,
// regardless of what the hours hierarchy resolved. Closures are final: a
// lower-priority "open" setting can never reopen a closed day.
//
// The function is idempotent; applying it twice yields the same result.
func ApplyClosures(eff domain.EffectiveDayHours, date time.Time, closures []*domain.Closure) domain.EffectiveDayHours {
	for _, closure := range closures {
		if closure == nil || !closure.Covers(date) {
			continue
		}
		eff.Open = false
		eff.ClosedReason = ptr.Ptr(closureReason(closure))
		return eff
	}
	return eff
}

func closureReason(c *domain.Closure) string {
	if c.Reason != "" {
		return c.Reason
	}
	switch c.Level() {
	case domain.LevelAppointmentType:
		return "appointment type blackout"
	case domain.LevelFacility:
		return "facility closure"
	default:
		return "organization holiday"
	}
}
