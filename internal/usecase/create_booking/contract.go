package create_booking

import (
	"context"
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/integrations/carrierservice"
	"github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
)

// BookingRepository persists bookings and supplies the locked day snapshot.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository is the hours/closure configuration source.
type ScheduleRepository interface {
	GetHoursOverrides(ctx context.Context, orgID int64, facilityID, typeID *int64) ([]*domain.HoursOverride, error)
	GetClosures(ctx context.Context, orgID int64, facilityID, typeID *int64, from, to time.Time) ([]*domain.Closure, error)
}

// WarehouseServiceClient is the entity catalog.
type WarehouseServiceClient interface {
	GetOrganization(ctx context.Context, orgID int64) (*warehouseservice.Organization, error)
	GetFacility(ctx context.Context, facilityID int64) (*warehouseservice.Facility, error)
	GetAppointmentType(ctx context.Context, facilityID, typeID int64) (*warehouseservice.AppointmentType, error)
}

// CarrierServiceClient supplies the carrier's selected truck for
// denormalization.
type CarrierServiceClient interface {
	GetSelectedTruckWithGracefulDegradation(ctx context.Context, carrierID int64) (*carrierservice.Truck, error)
}

// TransactionManager runs the capacity re-check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (substituted in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
