package holidays

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/pkg/metrics"
)

// Status состояние загрузки праздников
type Status struct {
	Data      []domain.Holiday
	IsLoading bool
	IsError   bool
}

// Err возвращает ErrNotReady или ErrUnavailable, если данных еще нет
func (s Status) Err() error {
	switch {
	case s.IsLoading:
		return ErrNotReady
	case s.IsError:
		return ErrUnavailable
	default:
		return nil
	}
}

// Provider загружает праздники один раз за время жизни процесса
// Переходы: loading -> ready | failed. Повторной загрузки и ретраев нет
type Provider struct {
	client   HolidaysClient
	country  string
	year     int
	location *time.Location
	metrics  Metrics
	logger   Logger

	mu      sync.RWMutex
	data    []domain.Holiday
	loading bool
	failed  bool
	closed  bool

	startOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewProvider создает провайдер в состоянии loading
// location задает часовой пояс, в котором сравниваются календарные дни
func NewProvider(
	client HolidaysClient,
	country string,
	year int,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *Provider {
	if location == nil {
		location = time.Local
	}
	return &Provider{
		client:   client,
		country:  country,
		year:     year,
		location: location,
		metrics:  metrics,
		logger:   logger,
		loading:  true,
		done:     make(chan struct{}),
	}
}

// Start запускает загрузку в отдельной горутине; повторные вызовы игнорируются
func (p *Provider) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		fetchCtx, cancel := context.WithCancel(ctx)
		p.mu.Lock()
		p.cancel = cancel
		p.mu.Unlock()

		go p.fetch(fetchCtx)
	})
}

// Wait блокируется до завершения загрузки или отмены ctx
func (p *Provider) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close отменяет незавершенную загрузку; поздний результат будет отброшен
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *Provider) fetch(ctx context.Context) {
	defer close(p.done)

	items, err := p.client.GetHolidays(ctx, p.country, p.year)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.logger.Warn("Holidays: provider closed, dropping fetch result for country=%s, year=%d", p.country, p.year)
		return
	}

	p.loading = false
	if err != nil {
		p.failed = true
		p.metrics.ObserveHolidayFetch(metrics.ResultFailure)
		p.logger.Error("Holidays: failed to fetch holidays for country=%s, year=%d: %v", p.country, p.year, err)
		return
	}

	data := make([]domain.Holiday, 0, len(items))
	for _, item := range items {
		data = append(data, item.ToDomain())
	}
	p.data = data
	p.metrics.ObserveHolidayFetch(metrics.ResultSuccess)
	p.logger.Info("Holidays: loaded %d holidays for country=%s, year=%d", len(data), p.country, p.year)
}

// Status возвращает текущее состояние загрузки
func (p *Provider) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Status{
		Data:      append([]domain.Holiday(nil), p.data...),
		IsLoading: p.loading,
		IsError:   p.failed,
	}
}

// Location возвращает часовой пояс календаря
func (p *Provider) Location() *time.Location {
	return p.location
}

// IsSelectableDay проверяет, можно ли выбрать день для тренировки:
// воскресенья и государственные праздники недоступны
func (p *Provider) IsSelectableDay(date time.Time) bool {
	local := date.In(p.location)
	if local.Weekday() == time.Sunday {
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, h := range p.data {
		if h.IsNational() && h.FallsOn(local, p.location) {
			return false
		}
	}
	return true
}

// ObservanceInfoFor возвращает памятный день, выпадающий на дату
func (p *Provider) ObservanceInfoFor(date time.Time) domain.ObservanceInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, h := range p.data {
		if h.IsObservance() && h.FallsOn(date, p.location) {
			return domain.ObservanceInfo{IsObservance: true, Name: h.Name}
		}
	}
	return domain.ObservanceInfo{}
}
