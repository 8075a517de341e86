package models

import (
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
)

// FacilityBookingsFilter narrows the facility bookings listing.
type FacilityBookingsFilter struct {
	FacilityID        int64
	AppointmentTypeID *int64
	StartDate         *time.Time
	EndDate           *time.Time
	Status            *domain.BookingStatus
	IncludeInactive   bool
}

// ToDomainFilter converts the service filter into the storage filter.
func (f FacilityBookingsFilter) ToDomainFilter() domain.FacilityBookingsFilter {
	return domain.FacilityBookingsFilter{
		FacilityID:        f.FacilityID,
		AppointmentTypeID: f.AppointmentTypeID,
		StartDate:         f.StartDate,
		EndDate:           f.EndDate,
		Status:            f.Status,
		IncludeInactive:   f.IncludeInactive,
	}
}
