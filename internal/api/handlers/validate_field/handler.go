package validate_field

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainingReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
)

const (
	msgInvalidSessionID = "некорректный ID формы"
	msgNotFound         = "форма не найдена"
	msgUnknownField     = "неизвестное поле формы"
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

// Handle POST /api/v1/sessions/{sessionId}/fields/{field}/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := handlers.SessionID(r)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/fields/{field}/validate - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}
	field := mux.Vars(r)["field"]

	result, err := h.service.ValidateField(sessionID, field)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/fields/{field}/validate - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, forms.ErrUnknownField):
			h.logger.Warn("POST /sessions/{id}/fields/{field}/validate - Unknown field: %s", field)
			handlers.RespondBadRequest(w, msgUnknownField)

		default:
			h.logger.Error("POST /sessions/{id}/fields/{field}/validate - Failed: session_id=%s, field=%s, error=%v",
				sessionID, field, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
