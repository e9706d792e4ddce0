package validation

import "github.com/m04kA/SMC-TrainingReservation/internal/domain"

// Kind итог проверки
type Kind int

const (
	KindValid Kind = iota
	KindInvalid
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindInvalid:
		return "invalid"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Result результат проверки всей записи
// При KindInvalid Errors содержит по одному сообщению на каждое ошибочное поле,
// при KindUnexpected Cause хранит исходную ошибку
type Result struct {
	Kind   Kind
	Errors map[domain.Field]string
	Cause  error
}

// IsValid returns true if every field passed its rule
func (r Result) IsValid() bool {
	return r.Kind == KindValid
}

// FieldResult результат проверки одного поля
type FieldResult struct {
	Kind    Kind
	Field   domain.Field
	Message string
	Cause   error
}

// IsValid returns true if the field passed its rule
func (r FieldResult) IsValid() bool {
	return r.Kind == KindValid
}

// ErrorMessage возвращает сообщение для отображения у поля:
// nil, если поле корректно, и общий текст для непредвиденных ошибок
func (r FieldResult) ErrorMessage() *string {
	switch r.Kind {
	case KindValid:
		return nil
	case KindInvalid:
		msg := r.Message
		return &msg
	default:
		msg := UnknownValidationError
		return &msg
	}
}
