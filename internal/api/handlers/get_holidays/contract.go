package get_holidays

import "github.com/m04kA/SMC-TrainingReservation/internal/service/holidays"

type HolidayProvider interface {
	Status() holidays.Status
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
