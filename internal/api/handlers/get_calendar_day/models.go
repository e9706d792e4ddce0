package get_calendar_day

import getCalendarDay "github.com/m04kA/SMC-TrainingReservation/internal/usecase/get_calendar_day"

// CalendarDayResponse информация о дне календаря
type CalendarDayResponse struct {
	Date           string   `json:"date"`
	Weekday        string   `json:"weekday"`
	Selectable     bool     `json:"selectable"`
	IsObservance   bool     `json:"isObservance"`
	ObservanceName string   `json:"observanceName,omitempty"`
	TimeSlots      []string `json:"timeSlots"`
}

func FromUseCaseResponse(resp *getCalendarDay.Response) CalendarDayResponse {
	slots := resp.TimeSlots
	if slots == nil {
		slots = []string{}
	}
	return CalendarDayResponse{
		Date:           resp.Date,
		Weekday:        resp.Weekday,
		Selectable:     resp.Selectable,
		IsObservance:   resp.IsObservance,
		ObservanceName: resp.ObservanceName,
		TimeSlots:      slots,
	}
}
