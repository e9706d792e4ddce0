package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты операций для меток result
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics метрики сервиса формы бронирования
// Все методы безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	HTTPRequestsTotal       *prometheus.CounterVec
	HTTPRequestDuration     *prometheus.HistogramVec
	SubmissionsTotal        *prometheus.CounterVec
	SubmissionDuration      prometheus.Histogram
	HolidayFetchesTotal     *prometheus.CounterVec
	ValidationFailuresTotal *prometheus.CounterVec
	ActiveSessions          prometheus.Gauge
}

// New регистрирует метрики в reg с префиксом serviceName
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "submissions_total",
			Help:      "The total number of booking submissions by result",
		}, []string{"result"}),
		SubmissionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "submission_duration_seconds",
			Help:      "Time taken by the submission sink",
			Buckets:   prometheus.DefBuckets,
		}),
		HolidayFetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "holiday_fetches_total",
			Help:      "The total number of holiday list fetches by result",
		}, []string{"result"}),
		ValidationFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "field_validation_failures_total",
			Help:      "The total number of failed field validations",
		}, []string{"field"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "active_form_sessions",
			Help:      "The number of open booking form sessions",
		}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveSubmission(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(result).Inc()
	m.SubmissionDuration.Observe(duration.Seconds())
}

func (m *Metrics) ObserveHolidayFetch(result string) {
	if m == nil {
		return
	}
	m.HolidayFetchesTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.ValidationFailuresTotal.WithLabelValues(field).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}
