package create_session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingReservation/internal/form"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms/models"
	"github.com/m04kA/SMC-TrainingReservation/pkg/logger"
)

type fakeService struct {
	snapshot *models.Snapshot
	err      error
}

func (f *fakeService) Create() (*models.Snapshot, error) {
	return f.snapshot, f.err
}

func TestHandler_Created(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{snapshot: &models.Snapshot{ID: id, State: form.InitialState()}}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		ID    string `json:"id"`
		State struct {
			Data struct {
				Age int `json:"age"`
			} `json:"data"`
			Errors map[string]string `json:"errors"`
		} `json:"state"`
		SubmitEnabled bool `json:"submitEnabled"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, 8, body.State.Data.Age)
	assert.Empty(t, body.State.Errors)
	assert.False(t, body.SubmitEnabled)
}

func TestHandler_TooManySessions(t *testing.T) {
	svc := &fakeService{err: forms.ErrTooManySessions}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
