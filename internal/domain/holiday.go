package domain

import "time"

// HolidayType классификация праздника
type HolidayType string

const (
	HolidayTypeNational   HolidayType = "NATIONAL_HOLIDAY"
	HolidayTypeObservance HolidayType = "OBSERVANCE"
	HolidayTypeSeason     HolidayType = "SEASON"
)

// Holiday represents a public holiday entry for one country
type Holiday struct {
	Country string
	Date    string // YYYY-MM-DD
	Day     string // название дня недели, например "Monday"
	ISO     string
	Name    string
	Type    HolidayType
	Year    int
}

// IsNational returns true if the holiday closes the studio for the day
func (h Holiday) IsNational() bool {
	return h.Type == HolidayTypeNational
}

// IsObservance returns true if the holiday is only shown as a note
func (h Holiday) IsObservance() bool {
	return h.Type == HolidayTypeObservance
}

// FallsOn проверяет, что праздник приходится на календарный день date
// Дата праздника трактуется как календарная дата в часовом поясе loc,
// время суток у date не учитывается
func (h Holiday) FallsOn(date time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DateFormat, h.Date, loc)
	if err != nil {
		return false
	}
	return IsSameDay(day, date.In(loc))
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
