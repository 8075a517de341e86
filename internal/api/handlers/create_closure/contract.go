package create_closure

import (
	"context"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateClosure(ctx context.Context, userID, facilityID int64, input models.ClosureInput) (*domain.Closure, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
