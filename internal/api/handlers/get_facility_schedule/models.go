package get_facility_schedule

import (
	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/service/schedule/models"
	"github.com/haulport/DockSlotService/pkg/types"
)

// ScheduleConfigResponse is the HTTP response model.
type ScheduleConfigResponse struct {
	OrganizationID int64               `json:"organizationId"`
	FacilityID     int64               `json:"facilityId"`
	Timezone       string              `json:"timezone"`
	HoursOverrides []HoursOverrideView `json:"hoursOverrides"`
	Closures       []ClosureView       `json:"closures"`
}

// HoursOverrideView is one stored override row.
type HoursOverrideView struct {
	ID                int64   `json:"id"`
	Level             string  `json:"level"`
	FacilityID        *int64  `json:"facilityId,omitempty"`
	AppointmentTypeID *int64  `json:"appointmentTypeId,omitempty"`
	Weekday           int     `json:"weekday"`
	Open              *bool   `json:"open,omitempty"`
	Start             *string `json:"start,omitempty"`
	End               *string `json:"end,omitempty"`
	BreakStart        *string `json:"breakStart,omitempty"`
	BreakEnd          *string `json:"breakEnd,omitempty"`
}

// ClosureView is one stored closure period.
type ClosureView struct {
	ID                int64  `json:"id"`
	Level             string `json:"level"`
	FacilityID        *int64 `json:"facilityId,omitempty"`
	AppointmentTypeID *int64 `json:"appointmentTypeId,omitempty"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	Reason            string `json:"reason"`
}

// FromServiceConfig converts the service model to the HTTP model.
func FromServiceConfig(cfg *models.ScheduleConfig) *ScheduleConfigResponse {
	overrides := make([]HoursOverrideView, len(cfg.HoursOverrides))
	for i, o := range cfg.HoursOverrides {
		overrides[i] = HoursOverrideView{
			ID:                o.ID,
			Level:             string(o.Level()),
			FacilityID:        o.FacilityID,
			AppointmentTypeID: o.AppointmentTypeID,
			Weekday:           o.Weekday,
			Open:              o.Hours.Open,
			Start:             timeStringPtr(o.Hours.Start),
			End:               timeStringPtr(o.Hours.End),
			BreakStart:        timeStringPtr(o.Hours.BreakStart),
			BreakEnd:          timeStringPtr(o.Hours.BreakEnd),
		}
	}

	closures := make([]ClosureView, len(cfg.Closures))
	for i, c := range cfg.Closures {
		closures[i] = ClosureView{
			ID:                c.ID,
			Level:             string(c.Level()),
			FacilityID:        c.FacilityID,
			AppointmentTypeID: c.AppointmentTypeID,
			StartDate:         c.StartDate.Format(domain.DateFormat),
			EndDate:           c.EndDate.Format(domain.DateFormat),
			Reason:            c.Reason,
		}
	}

	return &ScheduleConfigResponse{
		OrganizationID: cfg.OrganizationID,
		FacilityID:     cfg.FacilityID,
		Timezone:       cfg.Timezone,
		HoursOverrides: overrides,
		Closures:       closures,
	}
}

func timeStringPtr(v *types.TimeString) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
