package get_calendar_day

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/holidays"
)

// UseCase use case для получения информации о дне календаря
type UseCase struct {
	calendar  HolidayCalendar
	timeSlots []string
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar HolidayCalendar, timeSlots []string, logger Logger) *UseCase {
	return &UseCase{
		calendar:  calendar,
		timeSlots: append([]string(nil), timeSlots...),
		logger:    logger,
	}
}

// Execute возвращает доступность дня, памятную дату и слоты времени
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Разбираем дату
	date, err := parseDate(req, uc.calendar.Location())
	if err != nil {
		uc.logger.Warn("GetCalendarDay: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что праздники загружены
	if err := uc.calendar.Status().Err(); err != nil {
		if errors.Is(err, holidays.ErrNotReady) {
			uc.logger.Info("GetCalendarDay: holidays are still loading")
			return nil, ErrHolidaysLoading
		}
		uc.logger.Warn("GetCalendarDay: holidays unavailable: %v", err)
		return nil, ErrHolidaysUnavailable
	}

	// 3. Собираем информацию о дне
	day := domain.CalendarDay{
		Date:       date,
		Selectable: uc.calendar.IsSelectableDay(date),
		Observance: uc.calendar.ObservanceInfoFor(date),
	}
	if day.Selectable {
		day.TimeSlots = append([]string(nil), uc.timeSlots...)
	}

	return &Response{
		Date:           day.Date.Format(domain.DateFormat),
		Weekday:        day.Date.Weekday().String(),
		Selectable:     day.Selectable,
		IsObservance:   day.Observance.IsObservance,
		ObservanceName: day.Observance.Name,
		TimeSlots:      day.TimeSlots,
	}, nil
}
