package get_facility_bookings

import (
	"context"

	"github.com/haulport/DockSlotService/internal/domain"
	serviceModels "github.com/haulport/DockSlotService/internal/service/bookings/models"
)

type BookingService interface {
	GetFacilityBookings(ctx context.Context, userID int64, filter serviceModels.FacilityBookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
