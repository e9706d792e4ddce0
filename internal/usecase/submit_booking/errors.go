package submit_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда форма с таким ID не найдена
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrAlreadySubmitting возвращается, когда отправка уже выполняется
	ErrAlreadySubmitting = errors.New("submit_booking: submission already in progress")

	// ErrFormInvalid возвращается, когда запись не проходит проверку
	ErrFormInvalid = errors.New("submit_booking: form is not valid")

	// ErrSubmissionFailed возвращается, когда приемник не принял заявку
	ErrSubmissionFailed = errors.New("submit_booking: submission failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
