package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
)

// UnknownValidationError текст для поля, проверка которого завершилась непредвиденной ошибкой
const UnknownValidationError = "Unknown validation error"

// messages тексты ошибок по полю и тегу правила
var messages = map[domain.Field]map[string]string{
	domain.FieldFirstName: {
		"required": "First Name is required",
	},
	domain.FieldLastName: {
		"required": "Last Name is required",
	},
	domain.FieldEmailAddress: {
		"required": "E-mail address is required",
		"email":    "Please use correct formatting. Example: address@email.com",
	},
	domain.FieldAge: {
		"required": "Age is required",
	},
	domain.FieldPhoto: {
		"required": "Photo is required",
		"min":      "Photo is required",
		"max":      "The file is too large",
		"oneof":    "Unsupported File Format",
	},
	domain.FieldDate: {
		"required": "Date is required",
	},
	domain.FieldTime: {
		"required": "Time is required",
	},
}

// messageFor подбирает текст ошибки для нарушенного правила
func messageFor(field domain.Field, fe validator.FieldError) string {
	if msg, ok := messages[field][fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
