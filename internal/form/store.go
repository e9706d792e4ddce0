package form

import (
	"sync"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/validation"
)

// RecordValidator проверяет запись целиком
type RecordValidator interface {
	ValidateRecord(record domain.BookingRecord) validation.Result
}

// Listener вызывается после применения каждого действия
type Listener func(action Action, state State)

// Store владеет одним состоянием формы и меняет его только через Reduce
// После каждого действия запись заново проверяется целиком
type Store struct {
	mu        sync.Mutex
	state     State
	validity  validation.Result
	validator RecordValidator
	listeners []Listener
}

// NewStore создает хранилище с начальным состоянием
func NewStore(validator RecordValidator) *Store {
	s := &Store{
		state:     InitialState(),
		validator: validator,
	}
	s.validity = validator.ValidateRecord(s.state.Data)
	return s
}

// Subscribe регистрирует слушателя действий
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Dispatch применяет действие и возвращает копию нового состояния
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	state := s.apply(action)
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	notify(listeners, action, state)
	return state
}

// BeginSubmit атомарно проверяет, что форму можно отправить, и применяет SUBMIT
// Возвращает состояние с данными, которые нужно отправить
func (s *Store) BeginSubmit() (State, error) {
	s.mu.Lock()
	if s.state.IsSubmitting {
		s.mu.Unlock()
		return State{}, ErrAlreadySubmitting
	}
	if !s.validity.IsValid() {
		s.mu.Unlock()
		return State{}, ErrFormInvalid
	}
	action := Submit()
	state := s.apply(action)
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	notify(listeners, action, state)
	return state, nil
}

// State возвращает копию текущего состояния
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Validity возвращает результат последней проверки всей записи
func (s *Store) Validity() validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validity
}

// SubmitEnabled returns true if the record is valid and no submission is in flight
func (s *Store) SubmitEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validity.IsValid() && !s.state.IsSubmitting
}

// Snapshot возвращает состояние и доступность отправки, прочитанные под одной блокировкой
func (s *Store) Snapshot() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), s.validity.IsValid() && !s.state.IsSubmitting
}

// apply вызывается под s.mu
func (s *Store) apply(action Action) State {
	s.state = Reduce(s.state, action)
	s.validity = s.validator.ValidateRecord(s.state.Data)
	return s.state.Clone()
}

func notify(listeners []Listener, action Action, state State) {
	for _, l := range listeners {
		l(action, state)
	}
}
