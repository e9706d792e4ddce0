package submission

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/pkg/psqlbuilder"
)

const tableName = "submission_attempts"

const schema = `CREATE TABLE IF NOT EXISTS submission_attempts (
    id            BIGSERIAL PRIMARY KEY,
    session_id    TEXT        NOT NULL,
    email_address TEXT        NOT NULL,
    booking_date  TEXT        NOT NULL,
    booking_time  TEXT        NOT NULL,
    photo_name    TEXT        NOT NULL,
    photo_size    BIGINT      NOT NULL,
    status        TEXT        NOT NULL,
    error_message TEXT,
    duration_ms   BIGINT      NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Repository журнал попыток отправки формы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу журнала, если её ещё нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Create сохраняет попытку отправки и заполняет ID и CreatedAt
func (r *Repository) Create(ctx context.Context, attempt *domain.SubmissionAttempt) error {
	if attempt == nil || attempt.SessionID == "" || attempt.Status == "" {
		return ErrInvalidAttempt
	}

	query, args, err := buildInsertQuery(attempt)
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&attempt.ID, &createdAt)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	attempt.CreatedAt = createdAt.Time

	return nil
}

func buildInsertQuery(attempt *domain.SubmissionAttempt) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(
			"session_id",
			"email_address",
			"booking_date",
			"booking_time",
			"photo_name",
			"photo_size",
			"status",
			"error_message",
			"duration_ms",
		).
		Values(
			attempt.SessionID,
			attempt.EmailAddress,
			attempt.BookingDate,
			attempt.BookingTime,
			attempt.PhotoName,
			attempt.PhotoSize,
			string(attempt.Status),
			attempt.ErrorMessage,
			attempt.DurationMs,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}
