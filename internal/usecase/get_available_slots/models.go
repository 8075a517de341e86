package get_available_slots

import (
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
)

// Request asks for the bookable slots of one facility/appointment-type day.
type Request struct {
	CarrierID         int64     // requesting user, for logging only
	OrganizationID    int64     // tenant
	FacilityID        int64     // facility within the tenant
	AppointmentTypeID int64     // appointment type within the facility
	Date              time.Time // requested calendar day, facility-local
	IntervalMinutes   int       // slot grid step; 0 = service default
}

// Response is the annotated slot list for the day.
type Response struct {
	Date              time.Time
	OrganizationID    int64
	FacilityID        int64
	AppointmentTypeID int64
	Timezone          string // facility IANA timezone
	Weekday           int    // facility-local, 0 = Sunday
	Open              bool
	ClosedReason      *string // why the whole day is closed, when it is
	Slots             []domain.Slot
}
