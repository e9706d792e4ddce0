package holidays

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/pkg/logger"
)

const holidaysJSON = `[
	{"country":"Poland","iso":"PL","year":2024,"date":"2024-05-03","day":"Friday","name":"Constitution Day","type":"NATIONAL_HOLIDAY"},
	{"country":"Poland","iso":"PL","year":2024,"date":"2024-02-14","day":"Wednesday","name":"Valentine's Day","type":"OBSERVANCE"}
]`

func TestClient_GetHolidays(t *testing.T) {
	var gotQuery map[string]string
	var gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"country": r.URL.Query().Get("country"),
			"year":    r.URL.Query().Get("year"),
		}
		gotKey = r.Header.Get("x-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(holidaysJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1/holidays", "secret", time.Second, logger.NewNop())

	holidays, err := client.GetHolidays(context.Background(), "PL", 2024)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"country": "PL", "year": "2024"}, gotQuery)
	assert.Equal(t, "secret", gotKey)
	require.Len(t, holidays, 2)

	national := holidays[0].ToDomain()
	assert.Equal(t, "Constitution Day", national.Name)
	assert.Equal(t, domain.HolidayTypeNational, national.Type)
	assert.True(t, national.IsNational())
	assert.True(t, holidays[1].ToDomain().IsObservance())
}

func TestClient_GetHolidays_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Invalid API Key."}`, wantErr: ErrUnexpectedStatus},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrUnexpectedStatus},
		{name: "not json", status: http.StatusOK, body: "<html>", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "secret", time.Second, logger.NewNop())

			_, err := client.GetHolidays(context.Background(), "PL", 2024)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetHolidays_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, "secret", time.Second, logger.NewNop())

	_, err := client.GetHolidays(context.Background(), "PL", 2024)
	assert.ErrorIs(t, err, ErrInternal)
}
