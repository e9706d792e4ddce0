package get_session

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms/models"
)

type FormsService interface {
	Get(id uuid.UUID) (*models.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
