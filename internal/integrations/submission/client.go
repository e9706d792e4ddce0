package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент приемника заявок на тренировку
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента приемника заявок
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Submit отправляет запись одним POST-запросом
// Успехом считается любой ответ, тело которого разбирается как JSON; код ответа не проверяется
func (c *Client) Submit(ctx context.Context, record domain.BookingRecord) (*Receipt, error) {
	body, contentType, err := buildPayload(record)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", contentType)

	c.log.Info("Submitting booking: email=%s, date=%s, time=%s, photo_size=%d",
		record.EmailAddress, record.Date, record.Time, record.Photo.Size)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: status code %d: failed to decode response: %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	return &Receipt{
		StatusCode: resp.StatusCode,
		Body:       raw,
	}, nil
}
