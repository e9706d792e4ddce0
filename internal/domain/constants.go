package domain

// Ограничения схемы бронирования
const (
	MinAge            = 8
	MaxAge            = 100
	DefaultAge        = MinAge
	MaxPhotoSizeBytes = 2_000_000 // 2MB
)

// Параметры запроса праздников по умолчанию
const (
	DefaultHolidaysCountry = "PL"
	DefaultHolidaysYear    = 2024
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedPhotoContentTypes допустимые MIME-типы фотографии
var AllowedPhotoContentTypes = []string{
	"image/jpg",
	"image/jpeg",
	"image/png",
}

// DefaultTimeSlots доступные часы тренировки в течение дня
// "18.30" записан через точку так же, как его видит пользователь
var DefaultTimeSlots = []string{
	"12:00",
	"14:00",
	"16:30",
	"18.30",
	"20:00",
}
