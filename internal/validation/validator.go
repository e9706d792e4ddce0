package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
)

// Validator проверяет запись бронирования по правилам из тегов domain.BookingRecord
// и переводит ошибки библиотеки в отображение "поле -> сообщение"
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с именами полей из json-тегов
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: v}
}

// ValidateRecord проверяет все поля записи
// Для каждого ошибочного поля сохраняется сообщение первого нарушенного правила
func (v *Validator) ValidateRecord(record domain.BookingRecord) Result {
	return toResult(v.run(record))
}

// ValidateField проверяет одно поле независимо от остальных
func (v *Validator) ValidateField(field domain.Field, value any) FieldResult {
	record, err := domain.NewBookingRecord().WithValue(field, value)
	if err != nil {
		return FieldResult{
			Kind:  KindUnexpected,
			Field: field,
			Cause: fmt.Errorf("%w: %v", ErrUnexpectedValidation, err),
		}
	}

	// Ошибки остальных полей записи по умолчанию игнорируются
	res := v.ValidateRecord(record)
	switch res.Kind {
	case KindUnexpected:
		return FieldResult{Kind: KindUnexpected, Field: field, Cause: res.Cause}
	case KindInvalid:
		if msg, ok := res.Errors[field]; ok {
			return FieldResult{Kind: KindInvalid, Field: field, Message: msg}
		}
	}

	return FieldResult{Kind: KindValid, Field: field}
}

// run вызывает библиотеку и превращает панику в ошибку
func (v *Validator) run(record domain.BookingRecord) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validator panic: %v", r)
		}
	}()
	return v.validate.Struct(record)
}

func toResult(err error) Result {
	if err == nil {
		return Result{Kind: KindValid, Errors: map[domain.Field]string{}}
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return Result{
			Kind:   KindUnexpected,
			Errors: map[domain.Field]string{},
			Cause:  fmt.Errorf("%w: %v", ErrUnexpectedValidation, err),
		}
	}

	result := make(map[domain.Field]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		field, ok := fieldOf(fe)
		if !ok {
			return Result{
				Kind:   KindUnexpected,
				Errors: map[domain.Field]string{},
				Cause:  fmt.Errorf("%w: rule %q failed on unknown path %s", ErrUnexpectedValidation, fe.Tag(), fe.Namespace()),
			}
		}

		// Первое нарушенное правило побеждает
		if _, seen := result[field]; seen {
			continue
		}
		result[field] = messageFor(field, fe)
	}

	return Result{Kind: KindInvalid, Errors: result}
}

// fieldOf определяет поле формы по пути ошибки,
// например "BookingRecord.photo.size" -> photo
func fieldOf(fe validator.FieldError) (domain.Field, bool) {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) < 2 {
		return "", false
	}

	field, err := domain.ParseField(parts[1])
	if err != nil {
		return "", false
	}
	return field, true
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
