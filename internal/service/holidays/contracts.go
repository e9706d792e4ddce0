package holidays

import (
	"context"

	holidaysClient "github.com/m04kA/SMC-TrainingReservation/internal/integrations/holidays"
)

// HolidaysClient интерфейс клиента API праздников
type HolidaysClient interface {
	GetHolidays(ctx context.Context, country string, year int) ([]holidaysClient.Holiday, error)
}

// Metrics интерфейс метрик загрузки праздников
type Metrics interface {
	ObserveHolidayFetch(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
