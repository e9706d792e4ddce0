package create_session

import "github.com/m04kA/SMC-TrainingReservation/internal/service/forms/models"

type FormsService interface {
	Create() (*models.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
