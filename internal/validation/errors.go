package validation

import "errors"

var (
	// ErrUnexpectedValidation возвращается, когда библиотека валидации
	// завершилась ошибкой, не относящейся к правилам полей
	ErrUnexpectedValidation = errors.New("validation: unexpected validation error")
)
