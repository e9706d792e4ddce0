package holidays

import "github.com/m04kA/SMC-TrainingReservation/internal/domain"

// Holiday модель праздника из API праздников
type Holiday struct {
	Country string `json:"country"`
	Date    string `json:"date"` // "2024-05-03"
	Day     string `json:"day"`  // "Friday"
	ISO     string `json:"iso"`
	Name    string `json:"name"`
	Type    string `json:"type"` // NATIONAL_HOLIDAY, OBSERVANCE, SEASON
	Year    int    `json:"year"`
}

// ToDomain конвертирует модель API в доменную модель
func (h Holiday) ToDomain() domain.Holiday {
	return domain.Holiday{
		Country: h.Country,
		Date:    h.Date,
		Day:     h.Day,
		ISO:     h.ISO,
		Name:    h.Name,
		Type:    domain.HolidayType(h.Type),
		Year:    h.Year,
	}
}
