package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/haulport/DockSlotService/internal/availability"
	"github.com/haulport/DockSlotService/internal/domain"
	warehouseClient "github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
	"github.com/haulport/DockSlotService/pkg/ptr"
	"github.com/haulport/DockSlotService/pkg/tz"
)

// UseCase computes the bookable dock slots for one facility day.
type UseCase struct {
	bookingRepo     BookingRepository
	scheduleRepo    ScheduleRepository
	warehouseClient WarehouseServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	warehouseClient WarehouseServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		scheduleRepo:    scheduleRepo,
		warehouseClient: warehouseClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute resolves the configuration snapshot, fetches the day's bookings
// and hands everything to the availability calculator.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: carrier=%d, org=%d, facility=%d, type=%d, date=%s",
		req.CarrierID, req.OrganizationID, req.FacilityID, req.AppointmentTypeID,
		req.Date.Format(domain.DateFormat))

	// 1. Structural validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the entity chain: organization -> facility -> type
	org, err := uc.warehouseClient.GetOrganization(ctx, req.OrganizationID)
	if err != nil {
		if errors.Is(err, warehouseClient.ErrOrganizationNotFound) {
			uc.logger.Warn("GetAvailableSlots: organization id=%d not found", req.OrganizationID)
			return nil, ErrOrganizationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get organization id=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	facility, err := uc.warehouseClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, warehouseClient.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if facility.OrganizationID != org.ID {
		uc.logger.Warn("GetAvailableSlots: facility id=%d does not belong to organization id=%d",
			req.FacilityID, req.OrganizationID)
		return nil, ErrFacilityNotFound
	}

	apptType, err := uc.warehouseClient.GetAppointmentType(ctx, req.FacilityID, req.AppointmentTypeID)
	if err != nil {
		if errors.Is(err, warehouseClient.ErrAppointmentTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: appointment type id=%d not found", req.AppointmentTypeID)
			return nil, ErrAppointmentTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get appointment type id=%d: %v", req.AppointmentTypeID, err)
		return nil, fmt.Errorf("%w: failed to get appointment type: %v", ErrInternal, err)
	}
	if !apptType.Active {
		uc.logger.Warn("GetAvailableSlots: appointment type id=%d is inactive", req.AppointmentTypeID)
		return nil, ErrAppointmentTypeNotFound
	}

	if err := validateAppointmentTypeConfig(apptType); err != nil {
		uc.logger.Warn("GetAvailableSlots: appointment type id=%d misconfigured: %v", apptType.ID, err)
		return nil, err
	}

	// 3. Date validation on the facility's local calendar
	loc, err := tz.LoadLocation(facility.Timezone)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: facility id=%d has invalid timezone %q: %v",
			facility.ID, facility.Timezone, err)
		return nil, fmt.Errorf("%w: invalid facility timezone: %v", ErrInternal, err)
	}
	if err := validateDate(req.Date, uc.timeProvider.Now(), loc); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	interval := req.IntervalMinutes
	if interval == 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	// 4. Configuration snapshot: hours hierarchy and closures
	overrideRows, err := uc.scheduleRepo.GetHoursOverrides(ctx, org.ID,
		ptr.Ptr(facility.ID), ptr.Ptr(apptType.ID))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get hours overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get hours overrides: %v", ErrInternal, err)
	}
	orgHours, facilityHours, typeHours := domain.BuildWeekOverrides(overrideRows)

	closures, err := uc.scheduleRepo.GetClosures(ctx, org.ID,
		ptr.Ptr(facility.ID), ptr.Ptr(apptType.ID), req.Date, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	// 5. Booking snapshot: active bookings of this type on this day
	filter := domain.FacilityBookingsFilter{
		FacilityID:        facility.ID,
		AppointmentTypeID: ptr.Ptr(apptType.ID),
		StartDate:         &req.Date,
		EndDate:           &req.Date,
		IncludeInactive:   false,
	}
	bookings, err := uc.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. The calculator does the rest
	day, err := availability.Calculate(availability.Input{
		Date:            req.Date.Format(domain.DateFormat),
		Timezone:        facility.Timezone,
		IntervalMinutes: interval,
		DurationMinutes: apptType.DurationMinutes,
		BufferMinutes:   apptType.BufferMinutes,
		MaxConcurrent:   apptType.MaxConcurrent,
		MaySpanBreak:    apptType.MaySpanBreak,
		OrgHours:        orgHours,
		FacilityHours:   facilityHours,
		TypeHours:       typeHours,
		Closures:        closures,
		Bookings:        bookings,
	})
	if err != nil {
		if errors.Is(err, availability.ErrConfiguration) {
			uc.logger.Warn("GetAvailableSlots: calculator rejected configuration: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		if errors.Is(err, availability.ErrInvalidDate) {
			uc.logger.Warn("GetAvailableSlots: calculator rejected date: %v", err)
			return nil, ErrInvalidDate
		}
		uc.logger.Error("GetAvailableSlots: calculation failed: %v", err)
		return nil, fmt.Errorf("%w: calculation failed: %v", ErrInternal, err)
	}

	if day.ConfigIssue != nil {
		uc.logger.Warn("GetAvailableSlots: recovered config issue for facility=%d, type=%d, date=%s: %s",
			facility.ID, apptType.ID, day.Date, *day.ConfigIssue)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for facility=%d, type=%d, date=%s",
		len(day.Slots), facility.ID, apptType.ID, day.Date)

	return &Response{
		Date:              req.Date,
		OrganizationID:    org.ID,
		FacilityID:        facility.ID,
		AppointmentTypeID: apptType.ID,
		Timezone:          facility.Timezone,
		Weekday:           day.Weekday,
		Open:              day.Hours.Open,
		ClosedReason:      day.Hours.ClosedReason,
		Slots:             day.Slots,
	}, nil
}
