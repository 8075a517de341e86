package domain

import (
	"time"

	"github.com/haulport/DockSlotService/pkg/types"
)

// BookingStatus represents the status of a dock booking
type BookingStatus string

const (
	StatusScheduled           BookingStatus = "scheduled"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusArrived             BookingStatus = "arrived"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCarrier  BookingStatus = "cancelled_by_carrier"
	StatusCancelledByFacility BookingStatus = "cancelled_by_facility"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a carrier's dock appointment at a facility.
//
// Both representations of the appointment time are stored: the facility-local
// wall clock (BookingDate + StartTime) that was requested, and the absolute
// instants (StartsAt/EndsAt) computed once through pkg/tz at creation.
// EndsAt includes the appointment type's buffer, so overlap counting reads
// straight from the instants.
type Booking struct {
	ID                int64
	CarrierID         int64
	OrganizationID    int64
	FacilityID        int64
	AppointmentTypeID int64

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	BufferMinutes   int
	StartsAt        time.Time
	EndsAt          time.Time

	Status BookingStatus

	// Denormalized data for history
	AppointmentTypeName string
	DockName            *string
	TruckPlate          *string
	TrailerType         *string
	ReferenceNumber     *string
	Notes               *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies dock capacity.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCarrier &&
		b.Status != StatusCancelledByFacility &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking status can still be changed by
// a facility manager.
func (b *Booking) CanBeUpdated() bool {
	return b.Status != StatusCompleted &&
		b.Status != StatusCancelledByCarrier &&
		b.Status != StatusCancelledByFacility
}

// IsCancelled returns true if the booking has been cancelled by either side.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCarrier || b.Status == StatusCancelledByFacility
}

// Overlaps reports whether the booking's occupied range intersects
// [start, end). Touching endpoints do not count as overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartsAt.Before(end) && start.Before(b.EndsAt)
}

// FacilityBookingsFilter selects facility bookings for listing and for the
// availability calculator's booking snapshot.
type FacilityBookingsFilter struct {
	FacilityID        int64          // required
	AppointmentTypeID *int64         // optional, nil = all appointment types
	StartDate         *time.Time     // optional period start (inclusive)
	EndDate           *time.Time     // optional period end (inclusive)
	Status            *BookingStatus // optional status filter
	IncludeInactive   bool           // include cancelled / no-show bookings
}
