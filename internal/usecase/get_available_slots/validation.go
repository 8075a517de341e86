package get_available_slots

import (
	"fmt"
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
)

// validateRequest checks the structural validity of the request.
func validateRequest(req *Request) error {
	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}
	if req.AppointmentTypeID <= 0 {
		return fmt.Errorf("%w: appointmentTypeID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.IntervalMinutes != 0 && !domain.IsSupportedSlotInterval(req.IntervalMinutes) {
		return fmt.Errorf("%w: unsupported interval %d minutes", ErrInvalidConfiguration, req.IntervalMinutes)
	}
	return nil
}

// validateDate rejects dates in the past. "Past" is judged on calendar
// dates in the facility's timezone; a request for today is fine.
func validateDate(requestDate time.Time, now time.Time, loc *time.Location) error {
	localNow := now.In(loc)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, time.UTC)
	requested := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, time.UTC)

	if requested.Before(today) {
		return ErrInvalidDate
	}
	return nil
}

// validateAppointmentTypeConfig rejects appointment types whose settings are
// outside supported bounds; a broken type must not produce a plausible but
// wrong schedule.
func validateAppointmentTypeConfig(apptType *warehouseservice.AppointmentType) error {
	if apptType.DurationMinutes < domain.MinAppointmentDurationMinutes ||
		apptType.DurationMinutes > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: duration %d minutes out of range", ErrInvalidConfiguration, apptType.DurationMinutes)
	}
	if apptType.BufferMinutes < domain.MinBufferMinutes || apptType.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: buffer %d minutes out of range", ErrInvalidConfiguration, apptType.BufferMinutes)
	}
	if apptType.MaxConcurrent < domain.MinConcurrentBookings || apptType.MaxConcurrent > domain.MaxConcurrentBookings {
		return fmt.Errorf("%w: max concurrent %d out of range", ErrInvalidConfiguration, apptType.MaxConcurrent)
	}
	return nil
}
