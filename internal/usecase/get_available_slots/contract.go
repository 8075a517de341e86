package get_available_slots

import (
	"context"
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
)

// BookingRepository is the booking snapshot source.
type BookingRepository interface {
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
