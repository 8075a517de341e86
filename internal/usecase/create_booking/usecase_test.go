package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/integrations/carrierservice"
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

// inlineTxManager runs the callback directly; the test doubles below stand
// in for the locked snapshot a real transaction would provide.
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeWarehouse struct {
	org      *warehouseservice.Organization
	facility *warehouseservice.Facility
	apptType *warehouseservice.AppointmentType
}

func (f *fakeWarehouse) GetOrganization(_ context.Context, _ int64) (*warehouseservice.Organization, error) {
	return f.org, nil
}

func (f *fakeWarehouse) GetFacility(_ context.Context, _ int64) (*warehouseservice.Facility, error) {
	return f.facility, nil
}

func (f *fakeWarehouse) GetAppointmentType(_ context.Context, _, _ int64) (*warehouseservice.AppointmentType, error) {
	return f.apptType, nil
}

type fakeCarrier struct {
	truck *carrierservice.Truck
	err   error
}

func (f *fakeCarrier) GetSelectedTruckWithGracefulDegradation(_ context.Context, _ int64) (*carrierservice.Truck, error) {
	return f.truck, f.err
}

type fakeScheduleRepo struct {
	overrides []*domain.HoursOverride
	closures  []*domain.Closure
}

func (f *fakeScheduleRepo) GetHoursOverrides(_ context.Context, _ int64, _, _ *int64) ([]*domain.HoursOverride, error) {
	return f.overrides, nil
}

func (f *fakeScheduleRepo) GetClosures(_ context.Context, _ int64, _, _ *int64, _, _ time.Time) ([]*domain.Closure, error) {
	return f.closures, nil
}

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *booking
	stored.ID = 42
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetByFacilityWithFilter(_ context.Context, _ domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func tsp(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

type fixture struct {
	bookingRepo  *fakeBookingRepo
	scheduleRepo *fakeScheduleRepo
	warehouse    *fakeWarehouse
	carrier      *fakeCarrier
	txManager    *inlineTxManager
	uc           *UseCase
}

// newFixture wires a Chicago facility with Monday 08:00-17:00 hours,
// a 12:00-13:00 break and a one-truck 60+15 minute appointment type.
func newFixture() *fixture {
	f := &fixture{
		bookingRepo: &fakeBookingRepo{},
		scheduleRepo: &fakeScheduleRepo{
			overrides: []*domain.HoursOverride{
				{
					ID:             1,
					OrganizationID: 1,
					Weekday:        domain.Monday,
					Hours: domain.DayHoursOverride{
						Open:       ptr.Ptr(true),
						Start:      tsp("08:00"),
						End:        tsp("17:00"),
						BreakStart: tsp("12:00"),
						BreakEnd:   tsp("13:00"),
					},
				},
			},
		},
		warehouse: &fakeWarehouse{
			org: &warehouseservice.Organization{ID: 1, Name: "Acme Logistics", Active: true},
			facility: &warehouseservice.Facility{
				ID:             10,
				OrganizationID: 1,
				Name:           "Chicago DC",
				Timezone:       "America/Chicago",
			},
			apptType: &warehouseservice.AppointmentType{
				ID:              100,
				FacilityID:      10,
				Name:            "Standard Receiving",
				DockName:        ptr.Ptr("Dock 3"),
				DurationMinutes: 60,
				BufferMinutes:   15,
				MaxConcurrent:   1,
				MaySpanBreak:    false,
				Active:          true,
			},
		},
		carrier: &fakeCarrier{
			truck: &carrierservice.Truck{ID: 7, Plate: "IL 20-4481", TrailerType: "reefer"},
		},
		txManager: &inlineTxManager{},
	}
	f.uc = NewUseCase(f.bookingRepo, f.scheduleRepo, f.warehouse, f.carrier, f.txManager, nopLogger{})
	f.uc.timeProvider = fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func request(start string) *Request {
	return &Request{
		CarrierID:         5,
		OrganizationID:    1,
		FacilityID:        10,
		AppointmentTypeID: 100,
		Date:              time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), // Monday
		StartTime:         types.TimeString(start),
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	f := newFixture()

	req := request("09:00")
	req.ReferenceNumber = ptr.Ptr("PO-66120")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	b := resp.Booking
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, int64(5), b.CarrierID)
	assert.Equal(t, int64(10), b.FacilityID)
	assert.Equal(t, domain.StatusScheduled, b.Status)
	assert.Equal(t, types.TimeString("09:00"), b.StartTime)

	// Chicago is on CDT (UTC-5) on 2026-03-09; EndsAt holds the buffer too.
	assert.Equal(t, time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC), b.StartsAt.UTC())
	assert.Equal(t, time.Date(2026, 3, 9, 15, 15, 0, 0, time.UTC), b.EndsAt.UTC())

	// Denormalized snapshot fields.
	assert.Equal(t, "Standard Receiving", b.AppointmentTypeName)
	require.NotNil(t, b.DockName)
	assert.Equal(t, "Dock 3", *b.DockName)
	require.NotNil(t, b.TruckPlate)
	assert.Equal(t, "IL 20-4481", *b.TruckPlate)
	require.NotNil(t, b.TrailerType)
	assert.Equal(t, "reefer", *b.TrailerType)

	assert.Equal(t, 1, f.txManager.calls)
}

func TestExecute_CarrierServiceOutageDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.carrier.truck = nil
	f.carrier.err = carrierservice.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), request("09:00"))
	require.NoError(t, err)
	assert.Nil(t, resp.Booking.TruckPlate)
	assert.Nil(t, resp.Booking.TrailerType)
}

func TestExecute_NoSelectedTruck(t *testing.T) {
	f := newFixture()
	f.carrier.truck = nil
	f.carrier.err = carrierservice.ErrTruckNotFound

	resp, err := f.uc.Execute(context.Background(), request("09:00"))
	require.NoError(t, err)
	assert.Nil(t, resp.Booking.TruckPlate)
}

func TestExecute_SlotAtCapacity(t *testing.T) {
	f := newFixture()
	// 10:00-11:15 Chicago local (CDT, UTC-5), buffer included in EndsAt.
	f.bookingRepo.bookings = []*domain.Booking{
		{
			Status:   domain.StatusScheduled,
			StartsAt: time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 3, 9, 16, 15, 0, 0, time.UTC),
		},
	}

	_, err := f.uc.Execute(context.Background(), request("10:00"))
	assert.ErrorIs(t, err, ErrSlotAtCapacity)
	assert.Nil(t, f.bookingRepo.created)
}

func TestExecute_BufferBlocksAdjacentSlot(t *testing.T) {
	f := newFixture()
	// Booking ends 11:00 but its buffer holds the dock until 11:15.
	f.bookingRepo.bookings = []*domain.Booking{
		{
			Status:   domain.StatusScheduled,
			StartsAt: time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 3, 9, 16, 15, 0, 0, time.UTC),
		},
	}

	_, err := f.uc.Execute(context.Background(), request("11:00"))
	assert.ErrorIs(t, err, ErrSlotAtCapacity)
}

func TestExecute_CancelledBookingFreesTheSlot(t *testing.T) {
	f := newFixture()
	f.bookingRepo.bookings = []*domain.Booking{
		{
			Status:   domain.StatusCancelledByCarrier,
			StartsAt: time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 3, 9, 16, 15, 0, 0, time.UTC),
		},
	}

	resp, err := f.uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)
	assert.NotNil(t, resp.Booking)
}

func TestExecute_OutsideHours(t *testing.T) {
	f := newFixture()

	// 16:30 + 60 minutes runs past the 17:00 close.
	_, err := f.uc.Execute(context.Background(), request("16:30"))
	assert.ErrorIs(t, err, ErrOutsideHours)
}

func TestExecute_LastFittingStart(t *testing.T) {
	f := newFixture()

	// 16:00 + 60 minutes lands exactly on close; the trailing buffer does
	// not count against the open window.
	resp, err := f.uc.Execute(context.Background(), request("16:00"))
	require.NoError(t, err)
	assert.NotNil(t, resp.Booking)
}

func TestExecute_BreakTime(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), request("11:30"))
	assert.ErrorIs(t, err, ErrBreakTime)
}

func TestExecute_TypeMaySpanBreak(t *testing.T) {
	f := newFixture()
	f.warehouse.apptType.MaySpanBreak = true

	resp, err := f.uc.Execute(context.Background(), request("11:30"))
	require.NoError(t, err)
	assert.NotNil(t, resp.Booking)
}

func TestExecute_ClosedWeekday(t *testing.T) {
	f := newFixture()

	req := request("09:00")
	req.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) // Tuesday, not configured

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideHours)
}

func TestExecute_ClosureRejectsBooking(t *testing.T) {
	f := newFixture()
	f.scheduleRepo.closures = []*domain.Closure{
		{
			OrganizationID: 1,
			StartDate:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			Reason:         "inventory count",
		},
	}

	_, err := f.uc.Execute(context.Background(), request("09:00"))
	assert.ErrorIs(t, err, ErrFacilityClosed)
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture()

	req := request("09:00")
	req.Date = time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MalformedStartTime(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), request("9am"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_FacilityFromAnotherOrganization(t *testing.T) {
	f := newFixture()
	f.warehouse.facility.OrganizationID = 99

	_, err := f.uc.Execute(context.Background(), request("09:00"))
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_InsertFailureIsInternal(t *testing.T) {
	f := newFixture()
	f.bookingRepo.createErr = errors.New("deadlock detected")

	_, err := f.uc.Execute(context.Background(), request("09:00"))
	assert.ErrorIs(t, err, ErrInternal)
}
