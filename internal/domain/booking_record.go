package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrUnknownField возвращается для имени поля, которого нет в форме
	ErrUnknownField = errors.New("domain: unknown field")

	// ErrInvalidFieldValue возвращается, когда тип значения не подходит полю
	ErrInvalidFieldValue = errors.New("domain: invalid field value")
)

// Field имя поля формы бронирования (совпадает с именем в транспорте)
type Field string

const (
	FieldFirstName    Field = "firstName"
	FieldLastName     Field = "lastName"
	FieldEmailAddress Field = "emailAddress"
	FieldAge          Field = "age"
	FieldPhoto        Field = "photo"
	FieldDate         Field = "date"
	FieldTime         Field = "time"
)

// Fields все поля формы в порядке отображения и отправки
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmailAddress,
	FieldAge,
	FieldPhoto,
	FieldDate,
	FieldTime,
}

// ParseField проверяет, что строка является именем поля формы
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Photo загруженная фотография участника
// Size выставляется по len(Data) при загрузке, лимит проверяется и по самим байтам
type Photo struct {
	Filename    string `json:"name" validate:"required"`
	Size        int64  `json:"size" validate:"min=1,max=2000000"`
	ContentType string `json:"type" validate:"oneof=image/jpg image/jpeg image/png"`
	Data        []byte `json:"-" validate:"min=1,max=2000000"`
}

// NewPhoto собирает фотографию из загруженных байтов
func NewPhoto(filename, contentType string, data []byte) Photo {
	return Photo{
		Filename:    filename,
		Size:        int64(len(data)),
		ContentType: contentType,
		Data:        data,
	}
}

// IsEmpty returns true if no file has been attached
func (p Photo) IsEmpty() bool {
	return p.Filename == "" && len(p.Data) == 0
}

// BookingRecord данные одной заявки на тренировку
// Теги validate описывают правила каждого поля; правила не зависят друг от друга
type BookingRecord struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Age          int    `json:"age" validate:"required,min=8,max=100"`
	Photo        Photo  `json:"photo"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
}

// NewBookingRecord создает запись со значениями по умолчанию
func NewBookingRecord() BookingRecord {
	return BookingRecord{Age: DefaultAge}
}

// Value возвращает значение поля записи
func (r BookingRecord) Value(field Field) (any, error) {
	switch field {
	case FieldFirstName:
		return r.FirstName, nil
	case FieldLastName:
		return r.LastName, nil
	case FieldEmailAddress:
		return r.EmailAddress, nil
	case FieldAge:
		return r.Age, nil
	case FieldPhoto:
		return r.Photo, nil
	case FieldDate:
		return r.Date, nil
	case FieldTime:
		return r.Time, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// WithValue возвращает копию записи с замененным полем
// Исходная запись не изменяется
func (r BookingRecord) WithValue(field Field, value any) (BookingRecord, error) {
	switch field {
	case FieldFirstName, FieldLastName, FieldEmailAddress, FieldDate, FieldTime:
		s, ok := value.(string)
		if !ok {
			return r, fmt.Errorf("%w: %s expects text, got %T", ErrInvalidFieldValue, field, value)
		}
		switch field {
		case FieldFirstName:
			r.FirstName = s
		case FieldLastName:
			r.LastName = s
		case FieldEmailAddress:
			r.EmailAddress = s
		case FieldDate:
			r.Date = s
		case FieldTime:
			r.Time = s
		}
		return r, nil

	case FieldAge:
		age, err := toInt(value)
		if err != nil {
			return r, fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
		}
		r.Age = age
		return r, nil

	case FieldPhoto:
		switch p := value.(type) {
		case Photo:
			r.Photo = p
		case *Photo:
			if p == nil {
				r.Photo = Photo{}
			} else {
				r.Photo = *p
			}
		case nil:
			r.Photo = Photo{}
		default:
			return r, fmt.Errorf("%w: %s expects a photo, got %T", ErrInvalidFieldValue, field, value)
		}
		return r, nil

	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// Text возвращает текстовое представление поля для передачи в форме
// Для фотографии возвращается имя файла
func (r BookingRecord) Text(field Field) (string, error) {
	switch field {
	case FieldAge:
		return strconv.Itoa(r.Age), nil
	case FieldPhoto:
		return r.Photo.Filename, nil
	}
	v, err := r.Value(field)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expects a number, got %T", value)
	}
}
