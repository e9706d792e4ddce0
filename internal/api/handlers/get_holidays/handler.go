package get_holidays

import (
	"net/http"

	"github.com/m04kA/SMC-TrainingReservation/internal/api/handlers"
)

type Handler struct {
	provider HolidayProvider
	logger   Logger
}

func NewHandler(provider HolidayProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/holidays
// Отдает состояние загрузки как есть: клиент сам решает, показывать ли заглушку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.provider.Status()
	if status.IsError {
		h.logger.Warn("GET /holidays - Holidays are unavailable")
	}
	handlers.RespondJSON(w, http.StatusOK, FromStatus(status))
}
