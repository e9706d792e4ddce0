package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TrainingReservation/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-TrainingReservation/internal/usecase/submit_booking"
)

const (
	msgInvalidSessionID  = "некорректный ID формы"
	msgNotFound          = "форма не найдена"
	msgAlreadySubmitting = "форма уже отправляется"
	msgFormInvalid       = "форма заполнена с ошибками"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := handlers.SessionID(r)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/submit - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitBooking.ErrAlreadySubmitting):
			handlers.RespondConflict(w, msgAlreadySubmitting)

		case errors.Is(err, submitBooking.ErrFormInvalid):
			handlers.RespondUnprocessable(w, msgFormInvalid)

		case errors.Is(err, submitBooking.ErrSubmissionFailed):
			h.logger.Warn("POST /sessions/{id}/submit - Sink rejected submission: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusBadGateway, submitBooking.FailedMessage)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking submitted: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
