package availability

import (
	"fmt"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/types"
)

// GenerateSlots walks the effective open window in intervalMinutes steps and
// returns the candidate slot start times.
//
// A candidate is emitted only when the full appointment duration fits before
// closing time; a trailing partial slot is dropped. Candidates whose start
// falls inside the break window are skipped entirely (the grid itself keeps
// stepping, so slots resume on the same grid after the break). Slots that
// merely extend into the break are still emitted; whether they are bookable
// is the evaluator's call based on the may-span-break flag.
func GenerateSlots(eff domain.EffectiveDayHours, intervalMinutes, durationMinutes int) ([]types.TimeString, error) {
	if !domain.IsSupportedSlotInterval(intervalMinutes) {
		return nil, fmt.Errorf("%w: unsupported interval %d minutes", ErrConfiguration, intervalMinutes)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: non-positive duration %d minutes", ErrConfiguration, durationMinutes)
	}

	if !eff.Open {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0)

	for current := eff.Start; current.IsBefore(eff.End); {
		next, err := current.AddMinutes(intervalMinutes)

		if !startsInBreak(eff, current) {
			slotEnd, endErr := current.AddMinutes(durationMinutes)
			if endErr != nil {
				// Duration runs past midnight; nothing later fits either.
				break
			}
			if slotEnd.IsAfter(eff.End) {
				break
			}
			slots = append(slots, current)
		}

		if err != nil {
			break
		}
		current = next
	}

	return slots, nil
}

// startsInBreak reports whether a candidate start lies inside [breakStart,
// breakEnd). A start exactly at breakEnd is outside the break.
func startsInBreak(eff domain.EffectiveDayHours, start types.TimeString) bool {
	if !eff.HasBreak() {
		return false
	}
	return !start.IsBefore(*eff.BreakStart) && start.IsBefore(*eff.BreakEnd)
}
