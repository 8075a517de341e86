package upsert_hours_override

import (
	"context"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertHoursOverride(ctx context.Context, userID, facilityID int64, input models.HoursOverrideInput) (*domain.HoursOverride, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
