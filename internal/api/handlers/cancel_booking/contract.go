package cancel_booking

import (
	"context"

	"github.com/haulport/DockSlotService/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, userID, bookingID int64, reason string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
