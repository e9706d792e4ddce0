package form

import "github.com/m04kA/SMC-TrainingReservation/internal/domain"

// ActionType тип действия над формой
type ActionType string

const (
	ActionSetFieldValue ActionType = "SET_FIELD_VALUE"
	ActionValidateField ActionType = "VALIDATE_FIELD"
	ActionSubmit        ActionType = "SUBMIT"
	ActionSubmitSuccess ActionType = "SUBMIT_SUCCESS"
	ActionSubmitFailed  ActionType = "SUBMIT_FAILED"
	ActionReset         ActionType = "RESET"
)

// Action действие, которое редьюсер применяет к состоянию
// Message несет ошибку поля для VALIDATE_FIELD (nil очищает ошибку)
// или текст общей ошибки для SUBMIT_FAILED
type Action struct {
	Type    ActionType
	Field   domain.Field
	Value   any
	Message *string
}

func SetFieldValue(field domain.Field, value any) Action {
	return Action{Type: ActionSetFieldValue, Field: field, Value: value}
}

func ValidateField(field domain.Field, message *string) Action {
	return Action{Type: ActionValidateField, Field: field, Message: message}
}

func Submit() Action {
	return Action{Type: ActionSubmit}
}

func SubmitSuccess() Action {
	return Action{Type: ActionSubmitSuccess}
}

// SubmitFailed создает действие неудачной отправки с сообщением для пользователя
func SubmitFailed(message string) Action {
	return Action{Type: ActionSubmitFailed, Message: &message}
}

func Reset() Action {
	return Action{Type: ActionReset}
}
