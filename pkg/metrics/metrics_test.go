package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := New("training_booking", prometheus.NewRegistry())

	m.ObserveSubmission(ResultSuccess, 10*time.Millisecond)
	m.ObserveSubmission(ResultFailure, 20*time.Millisecond)
	m.ObserveSubmission(ResultFailure, 20*time.Millisecond)
	m.ObserveHolidayFetch(ResultSuccess)
	m.ObserveValidationFailure("age")
	m.SetActiveSessions(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues(ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HolidayFetchesTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailuresTotal.WithLabelValues("age")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/api/v1/holidays", 200, time.Millisecond)
		m.ObserveSubmission(ResultSuccess, time.Millisecond)
		m.ObserveHolidayFetch(ResultFailure)
		m.ObserveValidationFailure("photo")
		m.SetActiveSessions(1)
	})
}
