package get_calendar_day

import (
	"time"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/holidays"
)

// HolidayCalendar интерфейс провайдера праздников
type HolidayCalendar interface {
	Status() holidays.Status
	Location() *time.Location
	IsSelectableDay(date time.Time) bool
	ObservanceInfoFor(date time.Time) domain.ObservanceInfo
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
