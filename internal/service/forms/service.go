package forms

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/form"
	"github.com/m04kA/SMC-TrainingReservation/internal/service/forms/models"
)

// Service реестр открытых форм бронирования
// Каждая форма живет в собственном form.Store
type Service struct {
	validator   Validator
	dates       DateFilter
	timeSlots   []string
	maxSessions int
	metrics     Metrics
	logger      Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*form.Store
}

// NewService создает новый экземпляр сервиса форм
// maxSessions <= 0 снимает ограничение
func NewService(
	validator Validator,
	dates DateFilter,
	timeSlots []string,
	maxSessions int,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		validator:   validator,
		dates:       dates,
		timeSlots:   append([]string(nil), timeSlots...),
		maxSessions: maxSessions,
		metrics:     metrics,
		logger:      logger,
		sessions:    make(map[uuid.UUID]*form.Store),
	}
}

// Create открывает новую форму с записью по умолчанию
func (s *Service) Create() (*models.Snapshot, error) {
	s.mu.Lock()
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		s.logger.Warn("Create: session limit %d reached", s.maxSessions)
		return nil, ErrTooManySessions
	}
	id := uuid.New()
	store := form.NewStore(s.validator)
	s.sessions[id] = store
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(count)
	s.logger.Info("Create: opened session=%s", id)

	return snapshot(id, store), nil
}

// Store возвращает хранилище формы
func (s *Service) Store(id uuid.UUID) (*form.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	store, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return store, nil
}

// Get возвращает текущее состояние формы
func (s *Service) Get(id uuid.UUID) (*models.Snapshot, error) {
	store, err := s.Store(id)
	if err != nil {
		return nil, err
	}
	return snapshot(id, store), nil
}

// SetField применяет SET_FIELD_VALUE
// Для даты и времени дополнительно проверяется календарь и список слотов
func (s *Service) SetField(id uuid.UUID, fieldName string, value any) (*models.Snapshot, error) {
	store, err := s.Store(id)
	if err != nil {
		return nil, err
	}

	field, err := domain.ParseField(fieldName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, fieldName)
	}

	// Значение неподходящего типа редьюсер молча проигнорирует, поэтому отсекаем его здесь
	if _, err := domain.NewBookingRecord().WithValue(field, value); err != nil {
		s.logger.Warn("SetField: session=%s field=%s: %v", id, field, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	switch field {
	case domain.FieldDate:
		if err := s.checkDate(value.(string)); err != nil {
			s.logger.Warn("SetField: session=%s rejected date %q: %v", id, value, err)
			return nil, err
		}
	case domain.FieldTime:
		if err := s.checkTimeSlot(value.(string)); err != nil {
			s.logger.Warn("SetField: session=%s rejected time %q", id, value)
			return nil, err
		}
	}

	store.Dispatch(form.SetFieldValue(field, value))
	return snapshot(id, store), nil
}

// ValidateField проверяет поле при потере фокуса и применяет VALIDATE_FIELD
func (s *Service) ValidateField(id uuid.UUID, fieldName string) (*models.FieldValidation, error) {
	store, err := s.Store(id)
	if err != nil {
		return nil, err
	}

	field, err := domain.ParseField(fieldName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, fieldName)
	}

	value, err := store.State().Data.Value(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownField, err)
	}

	result := s.validator.ValidateField(field, value)
	message := result.ErrorMessage()
	if message != nil {
		s.metrics.ObserveValidationFailure(string(field))
		if result.Cause != nil {
			s.logger.Error("ValidateField: session=%s field=%s unexpected validation error: %v", id, field, result.Cause)
		}
	}

	store.Dispatch(form.ValidateField(field, message))

	return &models.FieldValidation{
		Field:    string(field),
		Error:    message,
		Snapshot: *snapshot(id, store),
	}, nil
}

// Reset возвращает форму к начальному состоянию
func (s *Service) Reset(id uuid.UUID) (*models.Snapshot, error) {
	store, err := s.Store(id)
	if err != nil {
		return nil, err
	}
	store.Dispatch(form.Reset())
	s.logger.Info("Reset: session=%s", id)
	return snapshot(id, store), nil
}

// Delete закрывает форму
func (s *Service) Delete(id uuid.UUID) error {
	s.mu.Lock()
	if _, ok := s.sessions[id]; !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(count)
	s.logger.Info("Delete: closed session=%s", id)
	return nil
}

// Count возвращает число открытых форм
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// checkDate пустая строка очищает поле и допустима
func (s *Service) checkDate(value string) error {
	if value == "" {
		return nil
	}

	date, err := time.ParseInLocation(domain.DateFormat, value, s.dates.Location())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if err := s.dates.Status().Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrHolidaysUnavailable, err)
	}

	if !s.dates.IsSelectableDay(date) {
		return ErrDateNotSelectable
	}
	return nil
}

func (s *Service) checkTimeSlot(value string) error {
	if value == "" || slices.Contains(s.timeSlots, value) {
		return nil
	}
	return ErrUnknownTimeSlot
}

func snapshot(id uuid.UUID, store *form.Store) *models.Snapshot {
	state, submitEnabled := store.Snapshot()
	return &models.Snapshot{
		ID:            id,
		State:         state,
		SubmitEnabled: submitEnabled,
	}
}

