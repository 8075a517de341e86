package get_available_slots

import (
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	getAvailableSlots "github.com/haulport/DockSlotService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	Date              string          `json:"date"`
	OrganizationID    int64           `json:"organizationId"`
	FacilityID        int64           `json:"facilityId"`
	AppointmentTypeID int64           `json:"appointmentTypeId"`
	Timezone          string          `json:"timezone"`
	Weekday           int             `json:"weekday"`
	Open              bool            `json:"open"`
	ClosedReason      *string         `json:"closedReason,omitempty"`
	Slots             []AvailableSlot `json:"slots"`
}

// AvailableSlot is one grid position of the day.
type AvailableSlot struct {
	StartTime         string  `json:"startTime"`
	StartsAt          string  `json:"startsAt"` // RFC 3339, facility offset
	DurationMinutes   int     `json:"durationMinutes"`
	Available         bool    `json:"available"`
	RemainingCapacity int     `json:"remainingCapacity"`
	TotalCapacity     int     `json:"totalCapacity"`
	Reason            *string `json:"reason,omitempty"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		var reason *string
		if slot.Reason != nil {
			r := string(*slot.Reason)
			reason = &r
		}
		slots[i] = AvailableSlot{
			StartTime:         slot.StartTime.String(),
			StartsAt:          slot.StartsAt.Format(time.RFC3339),
			DurationMinutes:   slot.DurationMinutes,
			Available:         slot.Available,
			RemainingCapacity: slot.RemainingCapacity,
			TotalCapacity:     slot.TotalCapacity,
			Reason:            reason,
		}
	}

	return &AvailableSlotsResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		OrganizationID:    resp.OrganizationID,
		FacilityID:        resp.FacilityID,
		AppointmentTypeID: resp.AppointmentTypeID,
		Timezone:          resp.Timezone,
		Weekday:           resp.Weekday,
		Open:              resp.Open,
		ClosedReason:      resp.ClosedReason,
		Slots:             slots,
	}
}

// ToUseCaseRequest builds the use case request from URL and query parts.
func ToUseCaseRequest(carrierID, orgID, facilityID, typeID int64, dateStr string, intervalMinutes int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CarrierID:         carrierID,
		OrganizationID:    orgID,
		FacilityID:        facilityID,
		AppointmentTypeID: typeID,
		Date:              date,
		IntervalMinutes:   intervalMinutes,
	}, nil
}
