// Package models holds HTTP response models shared by the booking
// endpoint handler packages.
package models

import (
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
)

// BookingResponse is the uniform HTTP representation of a booking.
type BookingResponse struct {
	ID                int64 `json:"id"`
	CarrierID         int64 `json:"carrierId"`
	OrganizationID    int64 `json:"organizationId"`
	FacilityID        int64 `json:"facilityId"`
	AppointmentTypeID int64 `json:"appointmentTypeId"`

	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	BufferMinutes   int    `json:"bufferMinutes"`
	StartsAt        string `json:"startsAt"`
	EndsAt          string `json:"endsAt"`

	Status string `json:"status"`

	AppointmentTypeName string  `json:"appointmentTypeName"`
	DockName            *string `json:"dockName,omitempty"`
	TruckPlate          *string `json:"truckPlate,omitempty"`
	TrailerType         *string `json:"trailerType,omitempty"`
	ReferenceNumber     *string `json:"referenceNumber,omitempty"`
	Notes               *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainBooking converts a domain booking to the HTTP model.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	var cancelledAt *string
	if b.CancelledAt != nil {
		v := b.CancelledAt.Format(time.RFC3339)
		cancelledAt = &v
	}

	return &BookingResponse{
		ID:                  b.ID,
		CarrierID:           b.CarrierID,
		OrganizationID:      b.OrganizationID,
		FacilityID:          b.FacilityID,
		AppointmentTypeID:   b.AppointmentTypeID,
		BookingDate:         b.BookingDate.Format(domain.DateFormat),
		StartTime:           b.StartTime.String(),
		DurationMinutes:     b.DurationMinutes,
		BufferMinutes:       b.BufferMinutes,
		StartsAt:            b.StartsAt.Format(time.RFC3339),
		EndsAt:              b.EndsAt.Format(time.RFC3339),
		Status:              string(b.Status),
		AppointmentTypeName: b.AppointmentTypeName,
		DockName:            b.DockName,
		TruckPlate:          b.TruckPlate,
		TrailerType:         b.TrailerType,
		ReferenceNumber:     b.ReferenceNumber,
		Notes:               b.Notes,
		CancellationReason:  b.CancellationReason,
		CancelledAt:         cancelledAt,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookings converts a booking list to the HTTP model.
func FromDomainBookings(list []*domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(list))
	for i, b := range list {
		out[i] = FromDomainBooking(b)
	}
	return out
}
