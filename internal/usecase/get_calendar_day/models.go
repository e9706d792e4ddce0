package get_calendar_day

// Request модель запроса информации о дне
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа с информацией о дне
type Response struct {
	Date           string   // Дата в формате YYYY-MM-DD
	Weekday        string   // День недели
	Selectable     bool     // Можно ли выбрать день
	IsObservance   bool     // Выпадает ли на день памятная дата
	ObservanceName string   // Название памятной даты
	TimeSlots      []string // Слоты времени, пусто для недоступного дня
}
