// Package bookings implements booking lifecycle operations: reading,
// listing, cancelling and status transitions, with carrier/manager
// access control resolved against the warehouse service.
package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/infra/storage/booking"
	"github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
	"github.com/haulport/DockSlotService/internal/service/bookings/models"
)

type Service struct {
	bookingRepo     BookingRepository
	warehouseClient WarehouseServiceClient
	logger          Logger
}

func New(bookingRepo BookingRepository, warehouseClient WarehouseServiceClient, logger Logger) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		warehouseClient: warehouseClient,
		logger:          logger,
	}
}

// GetByID returns a booking visible to the requesting user: the carrier
// who owns it or a manager of the facility it belongs to.
func (s *Service) GetByID(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	bkg, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: GetByID - booking %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("[bookings.GetByID] repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - get booking: %v", ErrInternal, err)
	}

	if bkg.CarrierID == userID {
		return bkg, nil
	}

	isManager, err := s.isFacilityManager(ctx, userID, bkg.FacilityID)
	if err != nil {
		return nil, err
	}
	if !isManager {
		return nil, fmt.Errorf("%w: GetByID - user %d has no access to booking %d", ErrAccessDenied, userID, bookingID)
	}

	return bkg, nil
}

// GetCarrierBookings lists the carrier's own bookings, optionally
// narrowed to a single status.
func (s *Service) GetCarrierBookings(ctx context.Context, carrierID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if status != nil && !isKnownStatus(*status) {
		return nil, fmt.Errorf("%w: GetCarrierBookings - unknown status %q", ErrInvalidInput, *status)
	}

	list, err := s.bookingRepo.GetByCarrierID(ctx, carrierID, status)
	if err != nil {
		s.logger.Error("[bookings.GetCarrierBookings] repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCarrierBookings - list bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// GetFacilityBookings lists bookings of a facility. Only facility
// managers may call it.
func (s *Service) GetFacilityBookings(ctx context.Context, userID int64, filter models.FacilityBookingsFilter) ([]*domain.Booking, error) {
	if filter.Status != nil && !isKnownStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: GetFacilityBookings - unknown status %q", ErrInvalidInput, *filter.Status)
	}

	isManager, err := s.isFacilityManager(ctx, userID, filter.FacilityID)
	if err != nil {
		return nil, err
	}
	if !isManager {
		return nil, fmt.Errorf("%w: GetFacilityBookings - user %d is not a manager of facility %d", ErrAccessDenied, userID, filter.FacilityID)
	}

	list, err := s.bookingRepo.GetByFacilityWithFilter(ctx, filter.ToDomainFilter())
	if err != nil {
		s.logger.Error("[bookings.GetFacilityBookings] repository error: %v", err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - list bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// Cancel cancels a booking. The carrier who owns it gets
// cancelled_by_carrier, a facility manager gets cancelled_by_facility.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64, reason string) (*domain.Booking, error) {
	// 1. Load the booking and decide who is cancelling.
	bkg, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: Cancel - booking %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("[bookings.Cancel] repository error: %v", err)
		return nil, fmt.Errorf("%w: Cancel - get booking: %v", ErrInternal, err)
	}

	var status domain.BookingStatus
	switch {
	case bkg.CarrierID == userID:
		status = domain.StatusCancelledByCarrier
	default:
		isManager, mErr := s.isFacilityManager(ctx, userID, bkg.FacilityID)
		if mErr != nil {
			return nil, mErr
		}
		if !isManager {
			return nil, fmt.Errorf("%w: Cancel - user %d has no access to booking %d", ErrAccessDenied, userID, bookingID)
		}
		status = domain.StatusCancelledByFacility
	}

	// 2. Check the booking is still cancellable.
	if !bkg.CanBeCancelled() {
		return nil, fmt.Errorf("%w: Cancel - booking %d is in status %q", ErrCannotCancel, bookingID, bkg.Status)
	}

	// 3. Persist the cancellation.
	if err := s.bookingRepo.Cancel(ctx, bookingID, status, reason); err != nil {
		s.logger.Error("[bookings.Cancel] cancel booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - cancel booking: %v", ErrInternal, err)
	}

	s.logger.Info("[bookings.Cancel] booking %d cancelled by user %d (%s)", bookingID, userID, status)

	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("[bookings.Cancel] reload booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - reload booking: %v", ErrInternal, err)
	}

	return updated, nil
}

// UpdateStatus moves a booking through its operational lifecycle
// (confirmed, arrived, completed, no_show). Manager only.
func (s *Service) UpdateStatus(ctx context.Context, userID, bookingID int64, status domain.BookingStatus) (*domain.Booking, error) {
	if !isOperationalStatus(status) {
		return nil, fmt.Errorf("%w: UpdateStatus - status %q is not an operational status", ErrInvalidStatus, status)
	}

	bkg, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: UpdateStatus - booking %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("[bookings.UpdateStatus] repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateStatus - get booking: %v", ErrInternal, err)
	}

	isManager, err := s.isFacilityManager(ctx, userID, bkg.FacilityID)
	if err != nil {
		return nil, err
	}
	if !isManager {
		return nil, fmt.Errorf("%w: UpdateStatus - user %d is not a manager of facility %d", ErrAccessDenied, userID, bkg.FacilityID)
	}

	if bkg.IsCancelled() || bkg.Status == domain.StatusCompleted || bkg.Status == domain.StatusNoShow {
		return nil, fmt.Errorf("%w: UpdateStatus - booking %d is already in terminal status %q", ErrInvalidStatus, bookingID, bkg.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		s.logger.Error("[bookings.UpdateStatus] update booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - update booking: %v", ErrInternal, err)
	}

	s.logger.Info("[bookings.UpdateStatus] booking %d moved to %s by user %d", bookingID, status, userID)

	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("[bookings.UpdateStatus] reload booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload booking: %v", ErrInternal, err)
	}

	return updated, nil
}

func (s *Service) isFacilityManager(ctx context.Context, userID, facilityID int64) (bool, error) {
	facility, err := s.warehouseClient.GetFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, warehouseservice.ErrFacilityNotFound) {
			return false, fmt.Errorf("%w: facility %d", ErrFacilityNotFound, facilityID)
		}
		s.logger.Error("[bookings] get facility %d: %v", facilityID, err)
		return false, fmt.Errorf("%w: get facility: %v", ErrInternal, err)
	}

	for _, id := range facility.ManagerIDs {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func isKnownStatus(status domain.BookingStatus) bool {
	switch status {
	case domain.StatusScheduled,
		domain.StatusConfirmed,
		domain.StatusArrived,
		domain.StatusCompleted,
		domain.StatusCancelledByCarrier,
		domain.StatusCancelledByFacility,
		domain.StatusNoShow:
		return true
	}
	return false
}

func isOperationalStatus(status domain.BookingStatus) bool {
	switch status {
	case domain.StatusConfirmed,
		domain.StatusArrived,
		domain.StatusCompleted,
		domain.StatusNoShow:
		return true
	}
	return false
}
