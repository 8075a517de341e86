// Package tz is the single timezone conversion point for the service.
// Every translation between a facility's wall-clock time and an absolute
// instant goes through the timezone database via time.LoadLocation; there is
// deliberately no epoch-offset arithmetic here, because manual offset math is
// exactly what breaks across DST transitions.
package tz

import (
	"errors"
	"fmt"
	"time"

	"github.com/haulport/DockSlotService/pkg/types"
)

var (
	// ErrInvalidTime is returned for malformed dates/times or unknown timezones
	ErrInvalidTime = errors.New("invalid local time")
)

// InvalidTimeSentinel is what FormatInTimezone returns when it cannot produce
// a trustworthy string. Callers render it as-is instead of a corrupted value.
const InvalidTimeSentinel = "--:--"

const dateLayout = "2006-01-02"

// LoadLocation resolves an IANA timezone name.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty timezone", ErrInvalidTime)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidTime, name)
	}
	return loc, nil
}

// LocalToInstant converts a facility-local calendar date and HH:MM wall time
// into an absolute instant.
//
// A wall time that does not exist in the given zone (spring-forward gap)
// resolves to the post-transition instant: 02:30 on the morning the clocks
// jump from 02:00 to 03:00 becomes 03:30, which matches how a dock gate
// actually behaves on that morning.
func LocalToInstant(dateStr string, timeStr types.TimeString, timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	date, err := time.ParseInLocation(dateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidTime, dateStr)
	}

	minutes, err := timeStr.Minutes()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad time %q", ErrInvalidTime, timeStr)
	}

	instant := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)

	// A gap time round-trips to a different wall clock. Reading earlier
	// than requested means time.Date composed the instant with the
	// post-transition offset and landed before the jump; shift forward by
	// the gap size. Reading later means the instant already sits past the
	// jump, which is the resolution we want.
	local := instant.In(loc)
	requested := time.Duration(minutes) * time.Minute
	observed := time.Duration(local.Hour())*time.Hour + time.Duration(local.Minute())*time.Minute
	delta := requested - observed
	if delta < -12*time.Hour {
		delta += 24 * time.Hour
	} else if delta > 12*time.Hour {
		delta -= 24 * time.Hour
	}
	if delta > 0 {
		instant = instant.Add(delta)
	}

	return instant, nil
}

// LocalWeekday returns the weekday (0=Sunday .. 6=Saturday) of instant as
// observed on the local calendar of the given timezone. The instant's UTC
// date is irrelevant here; near midnight the two calendars disagree.
func LocalWeekday(instant time.Time, timezone string) (int, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return 0, err
	}
	return int(instant.In(loc).Weekday()), nil
}

// DateWeekday returns the weekday (0=Sunday .. 6=Saturday) of a calendar date
// in the given timezone. Noon is used as the anchor so that DST transitions
// at or near midnight cannot shift the answer to a neighbouring day.
func DateWeekday(dateStr string, timezone string) (int, error) {
	instant, err := LocalToInstant(dateStr, types.TimeString("12:00"), timezone)
	if err != nil {
		return 0, err
	}
	return LocalWeekday(instant, timezone)
}

// FormatInTimezone renders instant on the local clock of the given timezone.
// On any invalid input it returns InvalidTimeSentinel rather than a
// plausible-looking but wrong value.
func FormatInTimezone(instant time.Time, timezone string, layout string) string {
	if instant.IsZero() || layout == "" {
		return InvalidTimeSentinel
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return InvalidTimeSentinel
	}
	return instant.In(loc).Format(layout)
}
