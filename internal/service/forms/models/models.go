package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TrainingReservation/internal/form"
)

// Snapshot состояние формы на момент запроса
type Snapshot struct {
	ID            uuid.UUID  `json:"id"`
	State         form.State `json:"state"`
	SubmitEnabled bool       `json:"submitEnabled"`
}

// FieldValidation результат проверки поля при потере фокуса
type FieldValidation struct {
	Field    string   `json:"field"`
	Error    *string  `json:"error"`
	Snapshot Snapshot `json:"snapshot"`
}
