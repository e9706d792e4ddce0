package get_calendar_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainingReservation/internal/api/handlers"
	getCalendarDay "github.com/m04kA/SMC-TrainingReservation/internal/usecase/get_calendar_day"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgHolidaysLoading     = "календарь праздников еще загружается"
	msgHolidaysUnavailable = "календарь праздников недоступен"
)

type Handler struct {
	useCase GetCalendarDayUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.useCase.Execute(r.Context(), &getCalendarDay.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getCalendarDay.ErrInvalidInput):
			h.logger.Warn("GET /calendar/{date} - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getCalendarDay.ErrHolidaysLoading):
			w.Header().Set("Retry-After", "1")
			handlers.RespondServiceUnavailable(w, msgHolidaysLoading)

		case errors.Is(err, getCalendarDay.ErrHolidaysUnavailable):
			handlers.RespondServiceUnavailable(w, msgHolidaysUnavailable)

		default:
			h.logger.Error("GET /calendar/{date} - Failed to get calendar day: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
