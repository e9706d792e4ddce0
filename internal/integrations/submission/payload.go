package submission

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
)

// buildPayload собирает multipart-тело из семи полей записи:
// фотография передается файлом, остальные поля текстом
func buildPayload(record domain.BookingRecord) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range domain.Fields {
		if field == domain.FieldPhoto {
			if err := writePhoto(writer, record.Photo); err != nil {
				return nil, "", err
			}
			continue
		}

		text, err := record.Text(field)
		if err != nil {
			return nil, "", err
		}
		if err := writer.WriteField(string(field), text); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

func writePhoto(writer *multipart.Writer, photo domain.Photo) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, domain.FieldPhoto, escapeQuotes(photo.Filename)))

	contentType := photo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create photo part: %w", err)
	}
	if _, err := part.Write(photo.Data); err != nil {
		return fmt.Errorf("write photo part: %w", err)
	}
	return nil
}

func escapeQuotes(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
