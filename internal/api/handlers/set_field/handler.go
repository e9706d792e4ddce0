package set_field

import (
	"errors"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainingReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
)

const (
	msgInvalidSessionID    = "некорректный ID формы"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "форма не найдена"
	msgUnknownField        = "неизвестное поле формы"
	msgInvalidValue        = "некорректное значение поля"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateNotSelectable   = "выбранный день недоступен для записи"
	msgUnknownTimeSlot     = "выбранное время недоступно"
	msgHolidaysUnavailable = "календарь праздников недоступен"
	msgPhotoRequired       = "файл фотографии не передан в части photo"
	msgUploadTooLarge      = "файл слишком большой"
	msgMultipartOnlyPhoto  = "multipart-запрос допустим только для поля photo"
	msgInternalError       = "внутренняя ошибка сервера"
)

type Handler struct {
	service        FormsService
	maxUploadBytes int64
	logger         Logger
}

// NewHandler maxUploadBytes ограничивает тело multipart-запроса
func NewHandler(service FormsService, maxUploadBytes int64, logger Logger) *Handler {
	return &Handler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/fields/{field}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := handlers.SessionID(r)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/fields/{field} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}
	field := mux.Vars(r)["field"]

	var value any
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if field != string(domain.FieldPhoto) {
			handlers.RespondBadRequest(w, msgMultipartOnlyPhoto)
			return
		}
		photo, status, msg := h.readUpload(w, r)
		if status != 0 {
			handlers.RespondError(w, status, msg)
			return
		}
		value = photo
	} else {
		var req SetFieldRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PUT /sessions/{id}/fields/{field} - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		value, err = req.ToValue(field)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/fields/{field} - Invalid value for field=%s: %v", field, err)
			handlers.RespondBadRequest(w, msgInvalidValue)
			return
		}
	}

	snapshot, err := h.service.SetField(sessionID, field, value)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/fields/{field} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, forms.ErrUnknownField):
			h.logger.Warn("PUT /sessions/{id}/fields/{field} - Unknown field: %s", field)
			handlers.RespondBadRequest(w, msgUnknownField)

		case errors.Is(err, forms.ErrInvalidValue):
			handlers.RespondBadRequest(w, msgInvalidValue)

		case errors.Is(err, forms.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, forms.ErrDateNotSelectable):
			handlers.RespondUnprocessable(w, msgDateNotSelectable)

		case errors.Is(err, forms.ErrUnknownTimeSlot):
			handlers.RespondUnprocessable(w, msgUnknownTimeSlot)

		case errors.Is(err, forms.ErrHolidaysUnavailable):
			handlers.RespondServiceUnavailable(w, msgHolidaysUnavailable)

		default:
			h.logger.Error("PUT /sessions/{id}/fields/{field} - Failed to set field: session_id=%s, field=%s, error=%v",
				sessionID, field, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snapshot)
}

// readUpload возвращает ненулевой статус, если загрузку нужно отклонить
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (domain.Photo, int, string) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("PUT /sessions/{id}/fields/photo - Upload exceeds %d bytes", h.maxUploadBytes)
			return domain.Photo{}, http.StatusRequestEntityTooLarge, msgUploadTooLarge
		}
		h.logger.Warn("PUT /sessions/{id}/fields/photo - Invalid multipart body: %v", err)
		return domain.Photo{}, http.StatusBadRequest, msgInvalidRequestBody
	}

	file, header, err := r.FormFile(string(domain.FieldPhoto))
	if err != nil {
		return domain.Photo{}, http.StatusBadRequest, msgPhotoRequired
	}
	defer file.Close()

	photo, err := photoFromUpload(file, header)
	if err != nil {
		h.logger.Error("PUT /sessions/{id}/fields/photo - %v", err)
		return domain.Photo{}, http.StatusInternalServerError, msgInternalError
	}
	return photo, 0, ""
}
