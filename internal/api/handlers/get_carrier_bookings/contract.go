package get_carrier_bookings

import (
	"context"

	"github.com/haulport/DockSlotService/internal/domain"
)

type BookingService interface {
	GetCarrierBookings(ctx context.Context, carrierID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
