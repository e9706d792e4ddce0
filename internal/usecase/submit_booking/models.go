package submit_booking

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TrainingReservation/internal/form"
)

// FailedMessage текст общей ошибки формы после неудачной отправки
const FailedMessage = "We could not send your booking. Please try again."

// Request модель запроса на отправку формы
type Request struct {
	SessionID uuid.UUID // ID формы
}

// Response модель ответа после успешной отправки
type Response struct {
	State   form.State      // Состояние формы после SUBMIT_SUCCESS
	Receipt json.RawMessage // Ответ приемника заявок
}
