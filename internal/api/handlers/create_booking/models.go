package create_booking

import (
	"time"

	"github.com/haulport/DockSlotService/internal/api/handlers/models"
	"github.com/haulport/DockSlotService/internal/domain"
	createBooking "github.com/haulport/DockSlotService/internal/usecase/create_booking"
	"github.com/haulport/DockSlotService/pkg/types"
)

// CreateBookingRequest is the HTTP request model.
type CreateBookingRequest struct {
	OrganizationID    int64   `json:"organizationId"`
	FacilityID        int64   `json:"facilityId"`
	AppointmentTypeID int64   `json:"appointmentTypeId"`
	BookingDate       string  `json:"bookingDate"` // "2026-03-10"
	StartTime         string  `json:"startTime"`   // "10:00"
	ReferenceNumber   *string `json:"referenceNumber,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest(carrierID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CarrierID:         carrierID,
		OrganizationID:    r.OrganizationID,
		FacilityID:        r.FacilityID,
		AppointmentTypeID: r.AppointmentTypeID,
		Date:              bookingDate,
		StartTime:         startTime,
		ReferenceNumber:   r.ReferenceNumber,
		Notes:             r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
