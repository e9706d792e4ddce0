package submission

import "errors"

var (
	// ErrInternal возвращается при ошибках подготовки или выполнения запроса
	ErrInternal = errors.New("submission client: internal error")

	// ErrInvalidResponse возвращается, когда тело ответа не является JSON
	ErrInvalidResponse = errors.New("submission client: invalid response")
)
