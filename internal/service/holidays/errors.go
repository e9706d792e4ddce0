package holidays

import "errors"

var (
	// ErrNotReady возвращается, пока список праздников загружается
	ErrNotReady = errors.New("holidays: data is still loading")

	// ErrUnavailable возвращается, когда загрузка праздников завершилась ошибкой
	ErrUnavailable = errors.New("holidays: data is unavailable")
)
