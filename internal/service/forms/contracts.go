package forms

import (
	"time"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/holidays"
	"github.com/m04kA/SMC-TrainingReservation/internal/validation"
)

// Validator интерфейс проверки записи и отдельного поля
type Validator interface {
	ValidateRecord(record domain.BookingRecord) validation.Result
	ValidateField(field domain.Field, value any) validation.FieldResult
}

// DateFilter интерфейс календаря доступных дней
type DateFilter interface {
	Status() holidays.Status
	Location() *time.Location
	IsSelectableDay(date time.Time) bool
}

// Metrics интерфейс метрик форм
type Metrics interface {
	ObserveValidationFailure(field string)
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
