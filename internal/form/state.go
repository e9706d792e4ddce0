package form

import "github.com/m04kA/SMC-TrainingReservation/internal/domain"

// State состояние формы бронирования
type State struct {
	Data         domain.BookingRecord    `json:"data"`
	Errors       map[domain.Field]string `json:"errors"`
	IsSubmitting bool                    `json:"isSubmitting"`
	IsSubmitted  bool                    `json:"isSubmitted"`
	SubmitError  string                  `json:"submitError,omitempty"` // общая ошибка формы после неудачной отправки
}

// InitialState возвращает начальное состояние формы
func InitialState() State {
	return State{
		Data:   domain.NewBookingRecord(),
		Errors: map[domain.Field]string{},
	}
}

// Clone возвращает копию состояния с собственной картой ошибок
func (s State) Clone() State {
	errs := make(map[domain.Field]string, len(s.Errors))
	for k, v := range s.Errors {
		errs[k] = v
	}
	s.Errors = errs
	return s
}
