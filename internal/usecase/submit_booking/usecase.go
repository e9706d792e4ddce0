package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/form"
	formsService "github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
	"github.com/m04kA/SMC-TrainingReservation/pkg/metrics"
)

// UseCase use case отправки формы бронирования
type UseCase struct {
	sessions     SessionStore
	client       SubmissionClient
	journal      Journal
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// journal может быть nil, если журнал выключен
func NewUseCase(
	sessions SessionStore,
	client SubmissionClient,
	journal Journal,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		client:       client,
		journal:      journal,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет одну попытку отправки формы
// На каждую принятую попытку приходится ровно один SUBMIT и ровно одно
// из SUBMIT_SUCCESS / SUBMIT_FAILED
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s", req.SessionID)

	// 1. Находим форму
	store, err := uc.sessions.Store(req.SessionID)
	if err != nil {
		if errors.Is(err, formsService.ErrSessionNotFound) {
			uc.logger.Warn("SubmitBooking: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 2. Проверяем и переводим форму в состояние отправки
	state, err := store.BeginSubmit()
	if err != nil {
		switch {
		case errors.Is(err, form.ErrAlreadySubmitting):
			uc.logger.Warn("SubmitBooking: session=%s is already submitting", req.SessionID)
			return nil, ErrAlreadySubmitting
		case errors.Is(err, form.ErrFormInvalid):
			uc.logger.Warn("SubmitBooking: session=%s has invalid record", req.SessionID)
			return nil, ErrFormInvalid
		default:
			return nil, fmt.Errorf("%w: begin submit: %v", ErrInternal, err)
		}
	}

	// 3. Отправляем запись, ровно один вызов без повторов
	started := uc.timeProvider.Now()
	receipt, sendErr := uc.client.Submit(ctx, state.Data)
	duration := uc.timeProvider.Now().Sub(started)

	attempt := &domain.SubmissionAttempt{
		SessionID:    req.SessionID.String(),
		EmailAddress: state.Data.EmailAddress,
		BookingDate:  state.Data.Date,
		BookingTime:  state.Data.Time,
		PhotoName:    state.Data.Photo.Filename,
		PhotoSize:    state.Data.Photo.Size,
		DurationMs:   duration.Milliseconds(),
	}

	// 4. Фиксируем итог в форме
	if sendErr != nil {
		uc.logger.Error("SubmitBooking: session=%s submission failed: %v", req.SessionID, sendErr)
		store.Dispatch(form.SubmitFailed(FailedMessage))

		reason := sendErr.Error()
		attempt.Status = domain.SubmissionFailed
		attempt.ErrorMessage = &reason
		uc.record(ctx, attempt, metrics.ResultFailure, duration)

		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, sendErr)
	}

	final := store.Dispatch(form.SubmitSuccess())
	attempt.Status = domain.SubmissionSucceeded
	uc.record(ctx, attempt, metrics.ResultSuccess, duration)

	uc.logger.Info("SubmitBooking: session=%s submitted, sink status=%d", req.SessionID, receipt.StatusCode)

	return &Response{
		State:   final,
		Receipt: receipt.Body,
	}, nil
}

// record пишет попытку в журнал и метрики, ошибки журнала только логируются
func (uc *UseCase) record(ctx context.Context, attempt *domain.SubmissionAttempt, result string, duration time.Duration) {
	if uc.metrics != nil {
		uc.metrics.ObserveSubmission(result, duration)
	}
	if uc.journal == nil {
		return
	}
	if err := uc.journal.Create(ctx, attempt); err != nil {
		uc.logger.Error("SubmitBooking: failed to journal attempt for session=%s: %v", attempt.SessionID, err)
	}
}
