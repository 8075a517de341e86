package domain

import (
	"time"

	"github.com/haulport/DockSlotService/pkg/types"
)

// DayHoursOverride is one level's configuration for a single weekday.
// Every field is optional: a nil field inherits from the next level up the
// hierarchy (appointment type > facility > organization), a set field wins.
type DayHoursOverride struct {
	Open       *bool
	Start      *types.TimeString
	End        *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// IsEmpty reports whether the override configures nothing for the day.
func (o *DayHoursOverride) IsEmpty() bool {
	return o == nil ||
		(o.Open == nil && o.Start == nil && o.End == nil && o.BreakStart == nil && o.BreakEnd == nil)
}

// WeekOverrides holds one level's per-weekday overrides, indexed Sunday=0.
// A nil entry means the level says nothing about that weekday.
type WeekOverrides [7]*DayHoursOverride

// EffectiveDayHours is the fully-merged schedule for one
// (organization, facility, appointment type, weekday) combination.
// It is derived on every request and never persisted.
type EffectiveDayHours struct {
	Open       bool
	Start      types.TimeString
	End        types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString

	// ClosedReason is set when a closure forced Open to false, so the
	// caller can tell "closed by schedule" from "closed by holiday".
	ClosedReason *string
}

// HasBreak reports whether a break window is configured.
func (e *EffectiveDayHours) HasBreak() bool {
	return e.BreakStart != nil && e.BreakEnd != nil
}

// HoursOverrideLevel identifies which hierarchy level an override row
// belongs to.
type HoursOverrideLevel string

const (
	LevelOrganization    HoursOverrideLevel = "organization"
	LevelFacility        HoursOverrideLevel = "facility"
	LevelAppointmentType HoursOverrideLevel = "appointment_type"
)

// HoursOverride is one persisted override row: one hierarchy level, one
// weekday. FacilityID and AppointmentTypeID being NULL encode the level.
type HoursOverride struct {
	ID                int64
	OrganizationID    int64
	FacilityID        *int64 // NULL = organization-wide
	AppointmentTypeID *int64 // NULL = whole facility (or organization)
	Weekday           int    // 0 = Sunday .. 6 = Saturday

	Hours DayHoursOverride

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Level returns the hierarchy level encoded by the row's NULL pattern.
func (h *HoursOverride) Level() HoursOverrideLevel {
	switch {
	case h.AppointmentTypeID != nil:
		return LevelAppointmentType
	case h.FacilityID != nil:
		return LevelFacility
	default:
		return LevelOrganization
	}
}

// BuildWeekOverrides splits persisted rows into one WeekOverrides per
// hierarchy level. Rows with out-of-range weekdays are dropped.
func BuildWeekOverrides(rows []*HoursOverride) (org, facility, apptType WeekOverrides) {
	for _, row := range rows {
		if row.Weekday < 0 || row.Weekday > 6 {
			continue
		}
		hours := row.Hours
		switch row.Level() {
		case LevelAppointmentType:
			apptType[row.Weekday] = &hours
		case LevelFacility:
			facility[row.Weekday] = &hours
		default:
			org[row.Weekday] = &hours
		}
	}
	return org, facility, apptType
}
