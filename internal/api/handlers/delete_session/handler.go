package delete_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TrainingReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
)

const (
	msgInvalidSessionID = "некорректный ID формы"
	msgNotFound         = "форма не найдена"
)

type Handler struct {
	service FormsService
	logger  Logger
}

func NewHandler(service FormsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := handlers.SessionID(r)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	if err := h.service.Delete(sessionID); err != nil {
		if errors.Is(err, forms.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /sessions/{id} - Failed to delete session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session deleted: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
