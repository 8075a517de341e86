package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in 24-hour "HH:MM" form.
// It carries no date and no timezone; pairing it with a calendar date and
// an IANA zone is the job of pkg/tz.
type TimeString string

var (
	// ErrInvalidTimeFormat is returned when a value is not a valid 24-hour HH:MM string
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

	// ErrTimeOutOfRange is returned when adding minutes would leave the 00:00-23:59 day window
	ErrTimeOutOfRange = errors.New("time out of day range")
)

const timeStringLayout = "15:04"

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString validates s and returns it as a TimeString.
// Only the canonical five-character form is accepted; time.Parse alone
// would let an unpadded hour like "8:30" through.
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) != len(timeStringLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if _, err := time.Parse(timeStringLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeString(s), nil
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	if len(t) != len(timeStringLayout) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by minutes.
// Fails with ErrTimeOutOfRange instead of wrapping past midnight, so callers
// never get a slot end that silently lands on the next day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOutOfRange, string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as not-before; validate on input instead.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Value implements driver.Valuer so TimeString binds as a TIME column value.
func (t TimeString) Value() (driver.Value, error) {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return string(t), nil
}

// Scan implements sql.Scanner; accepts TIME values in HH:MM or HH:MM:SS form.
func (t *TimeString) Scan(src interface{}) error {
	var raw string

	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source %T", ErrInvalidTimeFormat, src)
	}

	if len(raw) > 5 {
		raw = raw[:5]
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
