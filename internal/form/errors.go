package form

import "errors"

var (
	// ErrAlreadySubmitting возвращается при повторной отправке во время текущей
	ErrAlreadySubmitting = errors.New("form: submission already in progress")

	// ErrFormInvalid возвращается при попытке отправить некорректную форму
	ErrFormInvalid = errors.New("form: record is not valid")
)
