package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TrainingReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
)

const msgTooManySessions = "слишком много открытых форм, попробуйте позже"

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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Create()
	if err != nil {
		if errors.Is(err, forms.ErrTooManySessions) {
			h.logger.Warn("POST /sessions - Session limit reached")
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManySessions)
			return
		}
		h.logger.Error("POST /sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s", snapshot.ID)
	handlers.RespondJSON(w, http.StatusCreated, snapshot)
}
