// Package schedule implements the facility schedule configuration
// surface: weekly hours overrides per hierarchy level and closure
// periods. All operations are restricted to facility managers.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/infra/storage/schedule"
	"github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
	"github.com/haulport/DockSlotService/internal/service/schedule/models"
	"github.com/haulport/DockSlotService/pkg/types"
)

// defaultConfigWindowDays bounds the closure listing when the caller
// does not supply a range.
const defaultConfigWindowDays = 365

type Service struct {
	scheduleRepo    ScheduleRepository
	warehouseClient WarehouseServiceClient
	logger          Logger
}

func New(scheduleRepo ScheduleRepository, warehouseClient WarehouseServiceClient, logger Logger) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		warehouseClient: warehouseClient,
		logger:          logger,
	}
}

// GetConfig returns the facility's full schedule configuration: all
// hours overrides that apply to it and closures within [from, to].
// Zero from/to default to a year starting today.
func (s *Service) GetConfig(ctx context.Context, userID, facilityID int64, from, to time.Time) (*models.ScheduleConfig, error) {
	facility, err := s.requireManager(ctx, userID, facilityID)
	if err != nil {
		return nil, err
	}

	if from.IsZero() {
		from = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, defaultConfigWindowDays)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: GetConfig - range end before start", ErrInvalidInput)
	}

	overrides, err := s.scheduleRepo.GetFacilityHoursOverrides(ctx, facility.OrganizationID, facilityID)
	if err != nil {
		s.logger.Error("[schedule.GetConfig] load overrides: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - load overrides: %v", ErrInternal, err)
	}

	closures, err := s.scheduleRepo.GetFacilityClosures(ctx, facility.OrganizationID, facilityID, from, to)
	if err != nil {
		s.logger.Error("[schedule.GetConfig] load closures: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - load closures: %v", ErrInternal, err)
	}

	return &models.ScheduleConfig{
		OrganizationID: facility.OrganizationID,
		FacilityID:     facilityID,
		Timezone:       facility.Timezone,
		HoursOverrides: overrides,
		Closures:       closures,
	}, nil
}

// UpsertHoursOverride creates or replaces one weekday override for the
// facility, or for a single appointment type within it.
func (s *Service) UpsertHoursOverride(ctx context.Context, userID, facilityID int64, input models.HoursOverrideInput) (*domain.HoursOverride, error) {
	facility, err := s.requireManager(ctx, userID, facilityID)
	if err != nil {
		return nil, err
	}

	if input.Weekday < domain.Sunday || input.Weekday > domain.Saturday {
		return nil, fmt.Errorf("%w: UpsertHoursOverride - weekday %d out of range", ErrInvalidInput, input.Weekday)
	}
	if err := validateOverrideFields(input); err != nil {
		return nil, err
	}

	override := &domain.HoursOverride{
		OrganizationID:    facility.OrganizationID,
		FacilityID:        &facilityID,
		AppointmentTypeID: input.AppointmentTypeID,
		Weekday:           input.Weekday,
		Hours: domain.DayHoursOverride{
			Open:       input.Open,
			Start:      input.Start,
			End:        input.End,
			BreakStart: input.BreakStart,
			BreakEnd:   input.BreakEnd,
		},
	}

	saved, err := s.scheduleRepo.UpsertHoursOverride(ctx, override)
	if err != nil {
		s.logger.Error("[schedule.UpsertHoursOverride] upsert: %v", err)
		return nil, fmt.Errorf("%w: UpsertHoursOverride - upsert: %v", ErrInternal, err)
	}

	s.logger.Info("[schedule.UpsertHoursOverride] facility %d weekday %d override %d saved by user %d",
		facilityID, input.Weekday, saved.ID, userID)

	return saved, nil
}

// DeleteHoursOverride removes one facility-level override row. The
// weekday falls back to the next level of the hierarchy.
func (s *Service) DeleteHoursOverride(ctx context.Context, userID, facilityID, overrideID int64) error {
	facility, err := s.requireManager(ctx, userID, facilityID)
	if err != nil {
		return err
	}

	err = s.scheduleRepo.DeleteHoursOverride(ctx, facility.OrganizationID, facilityID, overrideID)
	if err != nil {
		if errors.Is(err, schedule.ErrOverrideNotFound) {
			return fmt.Errorf("%w: DeleteHoursOverride - override %d", ErrOverrideNotFound, overrideID)
		}
		s.logger.Error("[schedule.DeleteHoursOverride] delete override %d: %v", overrideID, err)
		return fmt.Errorf("%w: DeleteHoursOverride - delete: %v", ErrInternal, err)
	}

	s.logger.Info("[schedule.DeleteHoursOverride] facility %d override %d deleted by user %d",
		facilityID, overrideID, userID)

	return nil
}

// CreateClosure stores a new closure period for the facility or one of
// its appointment types.
func (s *Service) CreateClosure(ctx context.Context, userID, facilityID int64, input models.ClosureInput) (*domain.Closure, error) {
	facility, err := s.requireManager(ctx, userID, facilityID)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(domain.DateFormat, input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosure - invalid start date %q", ErrInvalidInput, input.StartDate)
	}
	endDate, err := time.Parse(domain.DateFormat, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosure - invalid end date %q", ErrInvalidInput, input.EndDate)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: CreateClosure - end date before start date", ErrInvalidInput)
	}
	if input.Reason == "" {
		return nil, fmt.Errorf("%w: CreateClosure - reason is required", ErrInvalidInput)
	}

	closure := &domain.Closure{
		OrganizationID:    facility.OrganizationID,
		FacilityID:        &facilityID,
		AppointmentTypeID: input.AppointmentTypeID,
		StartDate:         startDate,
		EndDate:           endDate,
		Reason:            input.Reason,
	}

	created, err := s.scheduleRepo.CreateClosure(ctx, closure)
	if err != nil {
		s.logger.Error("[schedule.CreateClosure] create: %v", err)
		return nil, fmt.Errorf("%w: CreateClosure - create: %v", ErrInternal, err)
	}

	s.logger.Info("[schedule.CreateClosure] facility %d closure %d (%s..%s) created by user %d",
		facilityID, created.ID, input.StartDate, input.EndDate, userID)

	return created, nil
}

// DeleteClosure removes one facility-level closure.
func (s *Service) DeleteClosure(ctx context.Context, userID, facilityID, closureID int64) error {
	facility, err := s.requireManager(ctx, userID, facilityID)
	if err != nil {
		return err
	}

	err = s.scheduleRepo.DeleteClosure(ctx, facility.OrganizationID, facilityID, closureID)
	if err != nil {
		if errors.Is(err, schedule.ErrClosureNotFound) {
			return fmt.Errorf("%w: DeleteClosure - closure %d", ErrClosureNotFound, closureID)
		}
		s.logger.Error("[schedule.DeleteClosure] delete closure %d: %v", closureID, err)
		return fmt.Errorf("%w: DeleteClosure - delete: %v", ErrInternal, err)
	}

	s.logger.Info("[schedule.DeleteClosure] facility %d closure %d deleted by user %d",
		facilityID, closureID, userID)

	return nil
}

func (s *Service) requireManager(ctx context.Context, userID, facilityID int64) (*warehouseservice.Facility, error) {
	facility, err := s.warehouseClient.GetFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, warehouseservice.ErrFacilityNotFound) {
			return nil, fmt.Errorf("%w: facility %d", ErrFacilityNotFound, facilityID)
		}
		s.logger.Error("[schedule] get facility %d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: get facility: %v", ErrInternal, err)
	}

	for _, id := range facility.ManagerIDs {
		if id == userID {
			return facility, nil
		}
	}
	return nil, fmt.Errorf("%w: user %d is not a manager of facility %d", ErrAccessDenied, userID, facilityID)
}

// validateOverrideFields rejects structurally impossible values up
// front. Cross-level inconsistencies that only materialize after the
// hierarchy merge (for example a break outside the inherited window)
// are recovered at availability time instead.
func validateOverrideFields(input models.HoursOverrideInput) error {
	fields := []struct {
		name  string
		value *types.TimeString
	}{
		{"start", input.Start},
		{"end", input.End},
		{"break_start", input.BreakStart},
		{"break_end", input.BreakEnd},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if _, err := types.NewTimeStringFromString(string(*f.value)); err != nil {
			return fmt.Errorf("%w: UpsertHoursOverride - invalid %s %q", ErrInvalidInput, f.name, *f.value)
		}
	}

	if input.Start != nil && input.End != nil && !input.Start.IsBefore(*input.End) {
		return fmt.Errorf("%w: UpsertHoursOverride - start %s is not before end %s", ErrInvalidInput, *input.Start, *input.End)
	}
	if input.BreakStart != nil && input.BreakEnd != nil && !input.BreakStart.IsBefore(*input.BreakEnd) {
		return fmt.Errorf("%w: UpsertHoursOverride - break start %s is not before break end %s", ErrInvalidInput, *input.BreakStart, *input.BreakEnd)
	}
	if (input.BreakStart == nil) != (input.BreakEnd == nil) {
		return fmt.Errorf("%w: UpsertHoursOverride - break start and break end must be set together", ErrInvalidInput)
	}

	return nil
}
