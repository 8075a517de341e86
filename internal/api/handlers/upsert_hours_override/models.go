package upsert_hours_override

import (
	"github.com/haulport/DockSlotService/internal/service/schedule/models"
	"github.com/haulport/DockSlotService/pkg/types"
)

// UpsertHoursOverrideRequest is the HTTP request model. Absent fields
// inherit from the next level of the schedule hierarchy.
type UpsertHoursOverrideRequest struct {
	AppointmentTypeID *int64  `json:"appointmentTypeId,omitempty"`
	Weekday           int     `json:"weekday"`
	Open              *bool   `json:"open,omitempty"`
	Start             *string `json:"start,omitempty"`
	End               *string `json:"end,omitempty"`
	BreakStart        *string `json:"breakStart,omitempty"`
	BreakEnd          *string `json:"breakEnd,omitempty"`
}

// ToServiceInput converts the HTTP request into the service model.
func (r *UpsertHoursOverrideRequest) ToServiceInput() (models.HoursOverrideInput, error) {
	input := models.HoursOverrideInput{
		AppointmentTypeID: r.AppointmentTypeID,
		Weekday:           r.Weekday,
		Open:              r.Open,
	}

	fields := []struct {
		raw  *string
		dest **types.TimeString
	}{
		{r.Start, &input.Start},
		{r.End, &input.End},
		{r.BreakStart, &input.BreakStart},
		{r.BreakEnd, &input.BreakEnd},
	}
	for _, f := range fields {
		if f.raw == nil {
			continue
		}
		ts, err := types.NewTimeStringFromString(*f.raw)
		if err != nil {
			return input, err
		}
		*f.dest = &ts
	}

	return input, nil
}
