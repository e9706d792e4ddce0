package get_holidays

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/holidays"
	"github.com/m04kA/SMC-TrainingReservation/pkg/logger"
)

type fakeProvider holidays.Status

func (f fakeProvider) Status() holidays.Status { return holidays.Status(f) }

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		status holidays.Status
		want   string
	}{
		{
			name:   "loading",
			status: holidays.Status{IsLoading: true},
			want:   `{"isLoading":true,"isError":false,"data":[]}`,
		},
		{
			name:   "failed",
			status: holidays.Status{IsError: true},
			want:   `{"isLoading":false,"isError":true,"data":[]}`,
		},
		{
			name: "ready",
			status: holidays.Status{Data: []domain.Holiday{{
				Country: "Poland", ISO: "PL", Year: 2024, Date: "2024-05-03",
				Day: "Friday", Name: "Constitution Day", Type: domain.HolidayTypeNational,
			}}},
			want: `{"isLoading":false,"isError":false,"data":[{"country":"Poland","iso":"PL","year":2024,"date":"2024-05-03","day":"Friday","name":"Constitution Day","type":"NATIONAL_HOLIDAY"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(fakeProvider(tt.status), logger.NewNop()).
				Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/holidays", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())

			var body HolidaysResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		})
	}
}
