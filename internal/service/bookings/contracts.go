package bookings

import (
	"context"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/integrations/warehouseservice"
)

// BookingRepository is the persistence surface of the service.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCarrierID(ctx context.Context, carrierID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
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
