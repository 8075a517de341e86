package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
	"github.com/haulport/DockSlotService/pkg/ptr"
	"github.com/haulport/DockSlotService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeWarehouse struct {
	org      *warehouseservice.Organization
	facility *warehouseservice.Facility
	apptType *warehouseservice.AppointmentType

	orgErr      error
	facilityErr error
	typeErr     error
}

func (f *fakeWarehouse) GetOrganization(_ context.Context, _ int64) (*warehouseservice.Organization, error) {
	return f.org, f.orgErr
}

func (f *fakeWarehouse) GetFacility(_ context.Context, _ int64) (*warehouseservice.Facility, error) {
	return f.facility, f.facilityErr
}

func (f *fakeWarehouse) GetAppointmentType(_ context.Context, _, _ int64) (*warehouseservice.AppointmentType, error) {
	return f.apptType, f.typeErr
}

type fakeScheduleRepo struct {
	overrides []*domain.HoursOverride
	closures  []*domain.Closure
	err       error
}

func (f *fakeScheduleRepo) GetHoursOverrides(_ context.Context, _ int64, _, _ *int64) ([]*domain.HoursOverride, error) {
	return f.overrides, f.err
}

func (f *fakeScheduleRepo) GetClosures(_ context.Context, _ int64, _, _ *int64, _, _ time.Time) ([]*domain.Closure, error) {
	return f.closures, f.err
}

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	lastFilter domain.FacilityBookingsFilter
}

func (f *fakeBookingRepo) GetByFacilityWithFilter(_ context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, f.err
}

func tsp(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

// mondayOverrides opens Monday 08:00-17:00 at the organization level.
func mondayOverrides(orgID int64) []*domain.HoursOverride {
	return []*domain.HoursOverride{
		{
			ID:             1,
			OrganizationID: orgID,
			Weekday:        domain.Monday,
			Hours: domain.DayHoursOverride{
				Open:  ptr.Ptr(true),
				Start: tsp("08:00"),
				End:   tsp("17:00"),
			},
		},
	}
}

func validSetup() (*fakeBookingRepo, *fakeScheduleRepo, *fakeWarehouse) {
	warehouse := &fakeWarehouse{
		org: &warehouseservice.Organization{ID: 1, Name: "Acme Logistics", Active: true},
		facility: &warehouseservice.Facility{
			ID:             10,
			OrganizationID: 1,
			Name:           "Chicago DC",
			Timezone:       "America/Chicago",
			DockCount:      4,
		},
		apptType: &warehouseservice.AppointmentType{
			ID:              100,
			FacilityID:      10,
			Name:            "Standard Receiving",
			DurationMinutes: 60,
			BufferMinutes:   0,
			MaxConcurrent:   2,
			Active:          true,
		},
	}
	return &fakeBookingRepo{}, &fakeScheduleRepo{overrides: mondayOverrides(1)}, warehouse
}

func newTestUseCase(b *fakeBookingRepo, s *fakeScheduleRepo, w *fakeWarehouse) *UseCase {
	uc := NewUseCase(b, s, w, nopLogger{})
	uc.timeProvider = fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		CarrierID:         5,
		OrganizationID:    1,
		FacilityID:        10,
		AppointmentTypeID: 100,
		Date:              time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), // Monday
	}
}

func TestExecute_ReturnsSlots(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Open)
	assert.Equal(t, "America/Chicago", resp.Timezone)
	assert.Equal(t, domain.Monday, resp.Weekday)
	// 08:00-17:00 on the default 30-minute grid with 60-minute
	// appointments: last start 16:00, so 17 candidates.
	assert.Len(t, resp.Slots, 17)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, 2, slot.TotalCapacity)
	}

	// The booking snapshot is scoped to the type and the single day.
	require.NotNil(t, bookingRepo.lastFilter.AppointmentTypeID)
	assert.Equal(t, int64(100), *bookingRepo.lastFilter.AppointmentTypeID)
	assert.False(t, bookingRepo.lastFilter.IncludeInactive)
}

func TestExecute_ExplicitInterval(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	req := validRequest()
	req.IntervalMinutes = 60

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9) // 08:00 .. 16:00
}

func TestExecute_UnsupportedInterval(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	req := validRequest()
	req.IntervalMinutes = 45

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestExecute_ClosedWeekday(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	req := validRequest()
	req.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) // Tuesday, not configured

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Open)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosureClosesDay(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	scheduleRepo.closures = []*domain.Closure{
		{
			OrganizationID: 1,
			StartDate:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			Reason:         "inventory count",
		},
	}
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Open)
	require.NotNil(t, resp.ClosedReason)
	assert.Equal(t, "inventory count", *resp.ClosedReason)
	assert.Empty(t, resp.Slots)
}

func TestExecute_EntityChainErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*fakeWarehouse)
		wantErr error
	}{
		{
			name:    "organization missing",
			mutate:  func(w *fakeWarehouse) { w.orgErr = warehouseservice.ErrOrganizationNotFound },
			wantErr: ErrOrganizationNotFound,
		},
		{
			name:    "facility missing",
			mutate:  func(w *fakeWarehouse) { w.facilityErr = warehouseservice.ErrFacilityNotFound },
			wantErr: ErrFacilityNotFound,
		},
		{
			name:    "facility belongs to another organization",
			mutate:  func(w *fakeWarehouse) { w.facility.OrganizationID = 99 },
			wantErr: ErrFacilityNotFound,
		},
		{
			name:    "appointment type missing",
			mutate:  func(w *fakeWarehouse) { w.typeErr = warehouseservice.ErrAppointmentTypeNotFound },
			wantErr: ErrAppointmentTypeNotFound,
		},
		{
			name:    "appointment type inactive",
			mutate:  func(w *fakeWarehouse) { w.apptType.Active = false },
			wantErr: ErrAppointmentTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo, scheduleRepo, warehouse := validSetup()
			tt.mutate(warehouse)
			uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	req := validRequest()
	req.Date = time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayAccepted(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	// The fixed clock reads 2026-03-01 12:00 UTC, which is 2026-03-01
	// in Chicago as well. 2026-03-01 is a Sunday: closed but valid.
	req := validRequest()
	req.Date = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Open)
}

func TestExecute_MisconfiguredAppointmentType(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	warehouse.apptType.DurationMinutes = 0
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestExecute_InvalidRequest(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	req := validRequest()
	req.FacilityID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailureIsInternal(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	bookingRepo.err = errors.New("connection refused")
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ExistingBookingReducesCapacity(t *testing.T) {
	bookingRepo, scheduleRepo, warehouse := validSetup()
	warehouse.apptType.MaxConcurrent = 1

	// 10:00-11:00 Chicago on the requested Monday (CDT, UTC-5).
	bookingRepo.bookings = []*domain.Booking{
		{
			Status:   domain.StatusScheduled,
			StartsAt: time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC),
		},
	}
	uc := newTestUseCase(bookingRepo, scheduleRepo, warehouse)

	req := validRequest()
	req.IntervalMinutes = 60

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	byStart := map[string]domain.Slot{}
	for _, slot := range resp.Slots {
		byStart[slot.StartTime.String()] = slot
	}

	require.Contains(t, byStart, "10:00")
	assert.False(t, byStart["10:00"].Available)
	require.NotNil(t, byStart["10:00"].Reason)
	assert.Equal(t, domain.ReasonAtCapacity, *byStart["10:00"].Reason)
	assert.True(t, byStart["09:00"].Available)
	assert.True(t, byStart["11:00"].Available)
}
