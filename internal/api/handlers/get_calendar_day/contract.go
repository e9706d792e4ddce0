package get_calendar_day

import (
	"context"

	getCalendarDay "github.com/m04kA/SMC-TrainingReservation/internal/usecase/get_calendar_day"
)

type GetCalendarDayUseCase interface {
	Execute(ctx context.Context, req *getCalendarDay.Request) (*getCalendarDay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
