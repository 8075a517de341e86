package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haulport/DockSlotService/internal/availability"
	"github.com/haulport/DockSlotService/internal/domain"
	carrierClient "github.com/haulport/DockSlotService/internal/integrations/carrierservice"
	warehouseClient "github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
	"github.com/haulport/DockSlotService/pkg/ptr"
	"github.com/haulport/DockSlotService/pkg/tz"
)

// UseCase creates dock bookings. The availability re-check and the insert
// run in one serializable transaction, so an availability response a
// carrier saw seconds ago is never trusted at commit time.
type UseCase struct {
	bookingRepo     BookingRepository
	scheduleRepo    ScheduleRepository
	warehouseClient WarehouseServiceClient
	carrierClient   CarrierServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	warehouseClient WarehouseServiceClient,
	carrierClient CarrierServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		scheduleRepo:    scheduleRepo,
		warehouseClient: warehouseClient,
		carrierClient:   carrierClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books the requested slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: carrier=%d, org=%d, facility=%d, type=%d, date=%s, time=%s",
		req.CarrierID, req.OrganizationID, req.FacilityID, req.AppointmentTypeID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Structural validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Entity chain
	org, err := uc.warehouseClient.GetOrganization(ctx, req.OrganizationID)
	if err != nil {
		if errors.Is(err, warehouseClient.ErrOrganizationNotFound) {
			uc.logger.Warn("CreateBooking: organization id=%d not found", req.OrganizationID)
			return nil, ErrOrganizationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get organization id=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	facility, err := uc.warehouseClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, warehouseClient.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if facility.OrganizationID != org.ID {
		uc.logger.Warn("CreateBooking: facility id=%d does not belong to organization id=%d",
			req.FacilityID, req.OrganizationID)
		return nil, ErrFacilityNotFound
	}

	apptType, err := uc.warehouseClient.GetAppointmentType(ctx, req.FacilityID, req.AppointmentTypeID)
	if err != nil {
		if errors.Is(err, warehouseClient.ErrAppointmentTypeNotFound) {
			uc.logger.Warn("CreateBooking: appointment type id=%d not found", req.AppointmentTypeID)
			return nil, ErrAppointmentTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get appointment type id=%d: %v", req.AppointmentTypeID, err)
		return nil, fmt.Errorf("%w: failed to get appointment type: %v", ErrInternal, err)
	}
	if !apptType.Active {
		uc.logger.Warn("CreateBooking: appointment type id=%d is inactive", req.AppointmentTypeID)
		return nil, ErrAppointmentTypeNotFound
	}

	// 3. Date on the facility's local calendar
	loc, err := tz.LoadLocation(facility.Timezone)
	if err != nil {
		uc.logger.Error("CreateBooking: facility id=%d has invalid timezone %q: %v",
			facility.ID, facility.Timezone, err)
		return nil, fmt.Errorf("%w: invalid facility timezone: %v", ErrInternal, err)
	}
	if err := validateDate(req.Date, uc.timeProvider.Now(), loc); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Selected truck, with graceful degradation: an outage of
	// CarrierService must not block the dock schedule.
	var truck *carrierClient.Truck
	truck, err = uc.carrierClient.GetSelectedTruckWithGracefulDegradation(ctx, req.CarrierID)
	if err != nil && !errors.Is(err, carrierClient.ErrTruckNotFound) && !errors.Is(err, carrierClient.ErrServiceDegraded) {
		uc.logger.Error("CreateBooking: failed to get selected truck for carrier id=%d: %v", req.CarrierID, err)
		return nil, fmt.Errorf("%w: failed to get selected truck: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Re-validate the slot and insert, atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1 Configuration snapshot
		overrideRows, err := uc.scheduleRepo.GetHoursOverrides(txCtx, org.ID,
			ptr.Ptr(facility.ID), ptr.Ptr(apptType.ID))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get hours overrides: %v", err)
			return fmt.Errorf("%w: failed to get hours overrides: %v", ErrInternal, err)
		}
		orgHours, facilityHours, typeHours := domain.BuildWeekOverrides(overrideRows)

		closures, err := uc.scheduleRepo.GetClosures(txCtx, org.ID,
			ptr.Ptr(facility.ID), ptr.Ptr(apptType.ID), req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get closures: %v", err)
			return fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
		}

		dateStr := req.Date.Format(domain.DateFormat)
		eff, issue, err := availability.EffectiveHoursForDate(dateStr, facility.Timezone,
			orgHours, facilityHours, typeHours, closures)
		if err != nil {
			uc.logger.Warn("CreateBooking: cannot resolve effective hours: %v", err)
			return ErrInvalidDate
		}
		if issue != nil {
			uc.logger.Warn("CreateBooking: recovered config issue for facility=%d, type=%d, date=%s: %s",
				facility.ID, apptType.ID, dateStr, *issue)
		}

		// 5.2 Day's bookings, locked FOR UPDATE for the capacity check
		filter := domain.FacilityBookingsFilter{
			FacilityID:        facility.ID,
			AppointmentTypeID: ptr.Ptr(apptType.ID),
			StartDate:         &req.Date,
			EndDate:           &req.Date,
			IncludeInactive:   false,
		}
		bookings, err := uc.bookingRepo.GetByFacilityWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.3 Evaluate the exact requested time through the calculator
		slot, err := availability.EvaluateSlot(availability.SlotRequest{
			Date:            dateStr,
			Timezone:        facility.Timezone,
			Start:           req.StartTime,
			DurationMinutes: apptType.DurationMinutes,
			BufferMinutes:   apptType.BufferMinutes,
			MaxConcurrent:   apptType.MaxConcurrent,
			MaySpanBreak:    apptType.MaySpanBreak,
		}, eff, bookings)
		if err != nil {
			if errors.Is(err, availability.ErrConfiguration) {
				uc.logger.Warn("CreateBooking: calculator rejected configuration: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
			}
			uc.logger.Warn("CreateBooking: slot evaluation failed: %v", err)
			return ErrInvalidDate
		}

		if !slot.Available {
			return unavailableError(slot.Reason)
		}

		// 5.4 Insert; EndsAt includes the buffer so later overlap counting
		// reads straight from the instants.
		occupied := time.Duration(apptType.DurationMinutes+apptType.BufferMinutes) * time.Minute
		booking := &domain.Booking{
			CarrierID:           req.CarrierID,
			OrganizationID:      org.ID,
			FacilityID:          facility.ID,
			AppointmentTypeID:   apptType.ID,
			BookingDate:         req.Date,
			StartTime:           req.StartTime,
			DurationMinutes:     apptType.DurationMinutes,
			BufferMinutes:       apptType.BufferMinutes,
			StartsAt:            slot.StartsAt,
			EndsAt:              slot.StartsAt.Add(occupied),
			Status:              domain.StatusScheduled,
			AppointmentTypeName: apptType.Name,
			DockName:            apptType.DockName,
			ReferenceNumber:     req.ReferenceNumber,
			Notes:               req.Notes,
		}
		if truck != nil {
			booking.TruckPlate = ptr.Ptr(truck.Plate)
			booking.TrailerType = ptr.Ptr(truck.TrailerType)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to insert booking: %v", err)
			return fmt.Errorf("%w: failed to insert booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for carrier=%d, facility=%d, date=%s, time=%s",
		result.ID, req.CarrierID, facility.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{Booking: result}, nil
}

// unavailableError maps the evaluator's reason taxonomy onto the use case's
// sentinel errors.
func unavailableError(reason *domain.UnavailabilityReason) error {
	if reason == nil {
		return ErrSlotAtCapacity
	}
	switch *reason {
	case domain.ReasonClosed:
		return ErrFacilityClosed
	case domain.ReasonOutsideHours:
		return ErrOutsideHours
	case domain.ReasonBreakTime:
		return ErrBreakTime
	default:
		return ErrSlotAtCapacity
	}
}
