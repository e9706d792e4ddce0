package submit_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/form"
	"github.com/m04kA/SMC-TrainingReservation/internal/integrations/submission"
)

// SessionStore интерфейс реестра форм
type SessionStore interface {
	Store(id uuid.UUID) (*form.Store, error)
}

// SubmissionClient интерфейс клиента приемника заявок
type SubmissionClient interface {
	Submit(ctx context.Context, record domain.BookingRecord) (*submission.Receipt, error)
}

// Journal интерфейс журнала попыток отправки
type Journal interface {
	Create(ctx context.Context, attempt *domain.SubmissionAttempt) error
}

// Metrics интерфейс метрик отправки
type Metrics interface {
	ObserveSubmission(result string, duration time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
