package get_session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms/models"
	"github.com/m04kA/SMC-TrainingReservation/pkg/logger"
)

type fakeService struct {
	known uuid.UUID
}

func (f *fakeService) Get(id uuid.UUID) (*models.Snapshot, error) {
	if id != f.known {
		return nil, forms.ErrSessionNotFound
	}
	return &models.Snapshot{ID: id}, nil
}

func TestHandler(t *testing.T) {
	known := uuid.New()
	h := NewHandler(&fakeService{known: known}, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sessions/{sessionId}", h.Handle).Methods(http.MethodGet)

	tests := []struct {
		name       string
		sessionID  string
		wantStatus int
	}{
		{name: "known session", sessionID: known.String(), wantStatus: http.StatusOK},
		{name: "unknown session", sessionID: uuid.New().String(), wantStatus: http.StatusNotFound},
		{name: "malformed id", sessionID: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+tt.sessionID, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
