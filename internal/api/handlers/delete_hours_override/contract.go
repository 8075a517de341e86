package delete_hours_override

import "context"

type ScheduleService interface {
	DeleteHoursOverride(ctx context.Context, userID, facilityID, overrideID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
