package get_facility_schedule

import (
	"context"
	"time"

	"github.com/haulport/DockSlotService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetConfig(ctx context.Context, userID, facilityID int64, from, to time.Time) (*models.ScheduleConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
