package forms

import "errors"

var (
	// ErrSessionNotFound возвращается, когда форма с таким ID не найдена
	ErrSessionNotFound = errors.New("forms: session not found")

	// ErrTooManySessions возвращается, когда достигнут лимит открытых форм
	ErrTooManySessions = errors.New("forms: too many open sessions")

	// ErrUnknownField возвращается для неизвестного имени поля
	ErrUnknownField = errors.New("forms: unknown field")

	// ErrInvalidValue возвращается, когда значение не подходит по типу для поля
	ErrInvalidValue = errors.New("forms: invalid field value")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("forms: invalid date")

	// ErrDateNotSelectable возвращается для воскресений и государственных праздников
	ErrDateNotSelectable = errors.New("forms: date is not selectable")

	// ErrHolidaysUnavailable возвращается, пока календарь праздников не загружен
	ErrHolidaysUnavailable = errors.New("forms: holidays are not available")

	// ErrUnknownTimeSlot возвращается для времени вне списка слотов
	ErrUnknownTimeSlot = errors.New("forms: unknown time slot")
)
