package validate_field

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms/models"
)

type FormsService interface {
	ValidateField(id uuid.UUID, field string) (*models.FieldValidation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
