package domain

import "time"

// Closure is a date range during which bookings are blocked: an organization
// holiday, a facility closure or an appointment-type blackout, depending on
// which reference fields are NULL. A matching closure always wins over
// whatever the hours hierarchy resolved for the day.
type Closure struct {
	ID                int64
	OrganizationID    int64
	FacilityID        *int64 // NULL = organization-wide holiday
	AppointmentTypeID *int64 // NULL = whole facility (or organization)

	StartDate time.Time // inclusive, date-only
	EndDate   time.Time // inclusive, date-only
	Reason    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Level returns the hierarchy level encoded by the closure's NULL pattern.
func (c *Closure) Level() HoursOverrideLevel {
	switch {
	case c.AppointmentTypeID != nil:
		return LevelAppointmentType
	case c.FacilityID != nil:
		return LevelFacility
	default:
		return LevelOrganization
	}
}

// Covers reports whether date falls inside the closure range. Only the
// calendar date is compared; time-of-day components are ignored.
func (c *Closure) Covers(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(c.StartDate)) && !d.After(truncateToDate(c.EndDate))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
