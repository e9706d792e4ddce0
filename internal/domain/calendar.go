package domain

import "time"

// ObservanceInfo сведения о памятном дне, выпадающем на дату
type ObservanceInfo struct {
	IsObservance bool
	Name         string
}

// CalendarDay представление дня в календаре бронирования
type CalendarDay struct {
	Date       time.Time
	Selectable bool
	Observance ObservanceInfo
	TimeSlots  []string // пусто, если день недоступен
}

// HasTimeSlots returns true if the day offers at least one slot
func (d *CalendarDay) HasTimeSlots() bool {
	return len(d.TimeSlots) > 0
}
