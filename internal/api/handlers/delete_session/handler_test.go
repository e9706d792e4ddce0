package delete_session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
	"github.com/m04kA/SMC-TrainingReservation/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func newRouter(svc FormsService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sessions/{sessionId}", h.Handle).Methods(http.MethodDelete)
	return r
}

func del(r http.Handler, id string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+id, nil))
	return rec
}

func TestHandler_Deletes(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("Delete", id).Return(nil).Once()

	rec := del(newRouter(svc), id.String())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	svc.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown session", err: forms.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "unexpected failure", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := new(mockService)
			svc.On("Delete", id).Return(tt.err).Once()

			rec := del(newRouter(svc), id.String())

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_MalformedSessionID(t *testing.T) {
	svc := new(mockService)

	rec := del(newRouter(svc), "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Delete", mock.Anything)
}
