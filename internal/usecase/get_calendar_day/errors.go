package get_calendar_day

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной дате в запросе
	ErrInvalidInput = errors.New("get_calendar_day: invalid input data")

	// ErrHolidaysLoading возвращается, пока список праздников загружается
	ErrHolidaysLoading = errors.New("get_calendar_day: holidays are still loading")

	// ErrHolidaysUnavailable возвращается, когда праздники загрузить не удалось
	ErrHolidaysUnavailable = errors.New("get_calendar_day: holidays are unavailable")
)
