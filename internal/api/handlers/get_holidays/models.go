package get_holidays

import (
	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/holidays"
)

// HolidayResponse праздник в ответе API
type HolidayResponse struct {
	Country string `json:"country"`
	ISO     string `json:"iso"`
	Year    int    `json:"year"`
	Date    string `json:"date"`
	Day     string `json:"day"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// HolidaysResponse состояние загрузки праздников
type HolidaysResponse struct {
	IsLoading bool              `json:"isLoading"`
	IsError   bool              `json:"isError"`
	Data      []HolidayResponse `json:"data"`
}

func FromStatus(status holidays.Status) HolidaysResponse {
	resp := HolidaysResponse{
		IsLoading: status.IsLoading,
		IsError:   status.IsError,
		Data:      make([]HolidayResponse, 0, len(status.Data)),
	}
	for _, h := range status.Data {
		resp.Data = append(resp.Data, fromDomainHoliday(h))
	}
	return resp
}

func fromDomainHoliday(h domain.Holiday) HolidayResponse {
	return HolidayResponse{
		Country: h.Country,
		ISO:     h.ISO,
		Year:    h.Year,
		Date:    h.Date,
		Day:     h.Day,
		Name:    h.Name,
		Type:    string(h.Type),
	}
}
