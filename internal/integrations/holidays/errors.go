package holidays

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidays client: internal error")

	// ErrUnexpectedStatus возвращается при любом ответе вне диапазона 2xx
	ErrUnexpectedStatus = errors.New("holidays client: unexpected status")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("holidays client: invalid response")
)
