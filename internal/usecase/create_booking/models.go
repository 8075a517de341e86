package create_booking

import (
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/types"
)

// Request describes the dock appointment a carrier wants to book.
type Request struct {
	CarrierID         int64
	OrganizationID    int64
	FacilityID        int64
	AppointmentTypeID int64
	Date              time.Time        // facility-local calendar day
	StartTime         types.TimeString // facility-local wall clock
	ReferenceNumber   *string          // PO / shipment reference, optional
	Notes             *string
}

// Response returns the created booking.
type Response struct {
	Booking *domain.Booking
}
