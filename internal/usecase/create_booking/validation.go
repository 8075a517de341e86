package create_booking

import (
	"fmt"
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
)

// validateRequest checks the structural validity of the request.
func validateRequest(req *Request) error {
	if req.CarrierID <= 0 {
		return fmt.Errorf("%w: carrierID must be positive", ErrInvalidInput)
	}
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
	if _, err := req.StartTime.Minutes(); err != nil {
		return fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}
	return nil
}

// validateDate rejects dates in the past on the facility's local calendar.
func validateDate(requestDate time.Time, now time.Time, loc *time.Location) error {
	localNow := now.In(loc)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, time.UTC)
	requested := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, time.UTC)

	if requested.Before(today) {
		return ErrInvalidDate
	}
	return nil
}
