package get_calendar_day

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
)

// parseDate разбирает дату запроса в часовом поясе календаря
func parseDate(req *Request, loc *time.Location) (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	return date, nil
}
