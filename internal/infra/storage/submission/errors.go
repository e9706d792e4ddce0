package submission

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("submission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("submission.repository: failed to execute query")

	// ErrInvalidAttempt возвращается, когда запись журнала не заполнена
	ErrInvalidAttempt = errors.New("submission.repository: invalid attempt")
)
