package schedule

import (
	"context"
	"time"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
)

// ScheduleRepository is the persistence surface of the service.
type ScheduleRepository interface {
	GetFacilityHoursOverrides(ctx context.Context, orgID, facilityID int64) ([]*domain.HoursOverride, error)
	UpsertHoursOverride(ctx context.Context, override *domain.HoursOverride) (*domain.HoursOverride, error)
	DeleteHoursOverride(ctx context.Context, orgID, facilityID, id int64) error
	GetFacilityClosures(ctx context.Context, orgID, facilityID int64, from, to time.Time) ([]*domain.Closure, error)
	CreateClosure(ctx context.Context, closure *domain.Closure) (*domain.Closure, error)
	DeleteClosure(ctx context.Context, orgID, facilityID, id int64) error
}

// WarehouseServiceClient resolves facilities for manager access checks.
type WarehouseServiceClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*warehouseservice.Facility, error)
}

// Logger is the logging surface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
