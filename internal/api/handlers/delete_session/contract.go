package delete_session

import "github.com/google/uuid"

type FormsService interface {
	Delete(id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
