package availability

import (
	"fmt"
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/tz"
	"github.com/haulport/DockSlotService/pkg/types"
)

// EffectiveHoursForDate resolves the complete effective schedule for one
// calendar date: hierarchy merge, sanity fix-ups, closures. The returned
// issue string is non-nil when a malformed configuration was recovered
// (day closed or break dropped) and should be logged by the caller.
func EffectiveHoursForDate(
	dateStr string,
	timezone string,
	org, facility, apptType domain.WeekOverrides,
	closures []*domain.Closure,
) (domain.EffectiveDayHours, *string, error) {
	weekday, err := tz.DateWeekday(dateStr, timezone)
	if err != nil {
		return domain.EffectiveDayHours{}, nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return domain.EffectiveDayHours{}, nil, fmt.Errorf("%w: bad date %q", ErrInvalidDate, dateStr)
	}

	eff := ResolveDayHours(weekday, org, facility, apptType)
	eff, issue := sanitizeHours(eff)
	eff = ApplyClosures(eff, date, closures)

	return eff, issue, nil
}

// ResolveDayHours merges the three configuration levels into the effective
// schedule for one weekday. Merging is field-by-field: an appointment type
// may override only its break window and still inherit open/start/end from
// the facility or organization.
//
// A weekday no level configured is closed. This is deliberate: absence of
// configuration must never silently turn into standard business hours.
func ResolveDayHours(weekday int, org, facility, apptType domain.WeekOverrides) domain.EffectiveDayHours {
	if weekday < 0 || weekday > 6 {
		return domain.EffectiveDayHours{Open: false}
	}

	var merged domain.DayHoursOverride
	for _, level := range []*domain.DayHoursOverride{org[weekday], facility[weekday], apptType[weekday]} {
		applyOverride(&merged, level)
	}

	eff := domain.EffectiveDayHours{Open: merged.Open != nil && *merged.Open}

	if merged.Start != nil {
		eff.Start = *merged.Start
	}
	if merged.End != nil {
		eff.End = *merged.End
	}
	eff.BreakStart = merged.BreakStart
	eff.BreakEnd = merged.BreakEnd

	// Open without a usable window is closed.
	if eff.Open && (eff.Start == "" || eff.End == "") {
		eff.Open = false
	}

	return eff
}

// applyOverride copies every explicitly set field of override onto dst.
func applyOverride(dst *domain.DayHoursOverride, override *domain.DayHoursOverride) {
	if override.IsEmpty() {
		return
	}
	if override.Open != nil {
		dst.Open = override.Open
	}
	if override.Start != nil {
		dst.Start = override.Start
	}
	if override.End != nil {
		dst.End = override.End
	}
	if override.BreakStart != nil {
		dst.BreakStart = override.BreakStart
	}
	if override.BreakEnd != nil {
		dst.BreakEnd = override.BreakEnd
	}
}

// sanitizeHours validates a resolved schedule. Malformed input never crashes
// a day calculation: an unusable open window closes the day, a malformed
// break window is dropped while the day stays open. The returned issue
// string is non-nil when anything was fixed up, so the caller can log it.
func sanitizeHours(eff domain.EffectiveDayHours) (domain.EffectiveDayHours, *string) {
	if !eff.Open {
		return eff, nil
	}

	if !validTime(eff.Start) || !validTime(eff.End) || !eff.Start.IsBefore(eff.End) {
		issue := fmt.Sprintf("invalid open window %s-%s, treating day as closed", eff.Start, eff.End)
		eff.Open = false
		return eff, &issue
	}

	if eff.BreakStart == nil && eff.BreakEnd == nil {
		return eff, nil
	}

	if breakIssue := checkBreak(eff); breakIssue != "" {
		eff.BreakStart = nil
		eff.BreakEnd = nil
		return eff, &breakIssue
	}

	return eff, nil
}

// checkBreak returns a non-empty issue description when the break window is
// unusable: half-configured, malformed, inverted, or outside [start, end).
func checkBreak(eff domain.EffectiveDayHours) string {
	if eff.BreakStart == nil || eff.BreakEnd == nil {
		return "half-configured break window, ignoring break"
	}
	bs, be := *eff.BreakStart, *eff.BreakEnd
	if !validTime(bs) || !validTime(be) || !bs.IsBefore(be) {
		return fmt.Sprintf("invalid break window %s-%s, ignoring break", bs, be)
	}
	if bs.IsBefore(eff.Start) || be.IsAfter(eff.End) {
		return fmt.Sprintf("break window %s-%s outside open window %s-%s, ignoring break",
			bs, be, eff.Start, eff.End)
	}
	return ""
}

func validTime(t types.TimeString) bool {
	_, err := t.Minutes()
	return t != "" && err == nil
}
