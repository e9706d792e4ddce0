package set_field

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
)

var (
	errMissingValue    = errors.New("value is required")
	errPhotoUploadOnly = errors.New("photo can only be set by multipart upload")
)

// SetFieldRequest тело запроса для JSON-полей
// Для фотографии допустим только null (очистка), файл передается multipart-запросом
type SetFieldRequest struct {
	Value json.RawMessage `json:"value"`
}

// ToValue разбирает value в тип, который ожидает поле
func (r *SetFieldRequest) ToValue(field string) (any, error) {
	if len(r.Value) == 0 {
		return nil, errMissingValue
	}

	if field == string(domain.FieldPhoto) {
		if bytes.Equal(bytes.TrimSpace(r.Value), []byte("null")) {
			return nil, nil
		}
		return nil, errPhotoUploadOnly
	}

	var value any
	if err := json.Unmarshal(r.Value, &value); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	if value == nil {
		return nil, errMissingValue
	}
	return value, nil
}

// photoFromUpload собирает фотографию из части multipart-формы
// Тип файла берется из заголовка части, как его передал клиент
func photoFromUpload(file multipart.File, header *multipart.FileHeader) (domain.Photo, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("read upload: %w", err)
	}
	return domain.NewPhoto(header.Filename, header.Header.Get("Content-Type"), data), nil
}
