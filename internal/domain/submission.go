package domain

import "time"

// SubmissionStatus итог попытки отправки формы
type SubmissionStatus string

const (
	SubmissionSucceeded SubmissionStatus = "succeeded"
	SubmissionFailed    SubmissionStatus = "failed"
)

// SubmissionAttempt запись журнала об одной попытке отправки
// Фотография в журнал не попадает, хранятся только её метаданные
type SubmissionAttempt struct {
	ID           int64
	SessionID    string
	EmailAddress string
	BookingDate  string
	BookingTime  string
	PhotoName    string
	PhotoSize    int64
	Status       SubmissionStatus
	ErrorMessage *string
	DurationMs   int64
	CreatedAt    time.Time
}

// IsSucceeded returns true if the sink accepted the submission
func (a *SubmissionAttempt) IsSucceeded() bool {
	return a.Status == SubmissionSucceeded
}
