package submit_booking

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/form"
	"github.com/m04kA/SMC-TrainingReservation/internal/integrations/submission"
	formsService "github.com/m04kA/SMC-TrainingReservation/internal/service/forms"
	"github.com/m04kA/SMC-TrainingReservation/internal/validation"
	"github.com/m04kA/SMC-TrainingReservation/pkg/logger"
	"github.com/m04kA/SMC-TrainingReservation/pkg/metrics"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Store(id uuid.UUID) (*form.Store, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*form.Store), args.Error(1)
}

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Submit(ctx context.Context, record domain.BookingRecord) (*submission.Receipt, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submission.Receipt), args.Error(1)
}

type mockJournal struct {
	mock.Mock
}

func (m *mockJournal) Create(ctx context.Context, attempt *domain.SubmissionAttempt) error {
	return m.Called(ctx, attempt).Error(0)
}

type fixedTime struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(25 * time.Millisecond)
	return f.now
}

type recorder struct {
	mu      sync.Mutex
	actions []form.ActionType
}

func (r *recorder) listen(action form.Action, _ form.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action.Type)
}

func (r *recorder) types() []form.ActionType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]form.ActionType(nil), r.actions...)
}

func validStore(t *testing.T) (*form.Store, *recorder) {
	t.Helper()

	store := form.NewStore(validation.New())
	store.Dispatch(form.SetFieldValue(domain.FieldFirstName, "Anna"))
	store.Dispatch(form.SetFieldValue(domain.FieldLastName, "Kowalska"))
	store.Dispatch(form.SetFieldValue(domain.FieldEmailAddress, "anna@example.com"))
	store.Dispatch(form.SetFieldValue(domain.FieldAge, 30))
	store.Dispatch(form.SetFieldValue(domain.FieldPhoto, domain.Photo{Filename: "me.png", Size: 3, ContentType: "image/png", Data: []byte("png")}))
	store.Dispatch(form.SetFieldValue(domain.FieldDate, "2024-03-12"))
	store.Dispatch(form.SetFieldValue(domain.FieldTime, "16:30"))
	require.True(t, store.SubmitEnabled())

	rec := &recorder{}
	store.Subscribe(rec.listen)
	return store, rec
}

func newUseCase(sessions SessionStore, client SubmissionClient, journal Journal) *UseCase {
	uc := NewUseCase(sessions, client, journal, (*metrics.Metrics)(nil), logger.NewNop())
	uc.timeProvider = &fixedTime{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	id := uuid.New()
	store, rec := validStore(t)

	sessions := new(mockSessions)
	sessions.On("Store", id).Return(store, nil)

	client := new(mockClient)
	client.On("Submit", mock.Anything, mock.MatchedBy(func(r domain.BookingRecord) bool {
		return r.FirstName == "Anna" && r.Age == 30
	})).Return(&submission.Receipt{StatusCode: 200, Body: json.RawMessage(`{"ok":true}`)}, nil).Once()

	journal := new(mockJournal)
	journal.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.SubmissionAttempt) bool {
		return a.Status == domain.SubmissionSucceeded &&
			a.SessionID == id.String() &&
			a.PhotoName == "me.png" &&
			a.ErrorMessage == nil &&
			a.DurationMs == 25
	})).Return(nil).Once()

	uc := newUseCase(sessions, client, journal)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: id})
	require.NoError(t, err)

	assert.True(t, resp.State.IsSubmitted)
	assert.False(t, resp.State.IsSubmitting)
	assert.Empty(t, resp.State.SubmitError)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Receipt))
	assert.Equal(t, []form.ActionType{form.ActionSubmit, form.ActionSubmitSuccess}, rec.types())

	client.AssertExpectations(t)
	journal.AssertExpectations(t)
}

func TestUseCase_Execute_SinkFailure(t *testing.T) {
	id := uuid.New()
	store, rec := validStore(t)

	sessions := new(mockSessions)
	sessions.On("Store", id).Return(store, nil)

	client := new(mockClient)
	client.On("Submit", mock.Anything, mock.Anything).
		Return(nil, submission.ErrInvalidResponse).Once()

	journal := new(mockJournal)
	journal.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.SubmissionAttempt) bool {
		return a.Status == domain.SubmissionFailed && a.ErrorMessage != nil
	})).Return(errors.New("db down")).Once()

	uc := newUseCase(sessions, client, journal)

	_, err := uc.Execute(context.Background(), &Request{SessionID: id})
	assert.ErrorIs(t, err, ErrSubmissionFailed)

	state := store.State()
	assert.False(t, state.IsSubmitting)
	assert.False(t, state.IsSubmitted)
	assert.Equal(t, FailedMessage, state.SubmitError)
	assert.Equal(t, []form.ActionType{form.ActionSubmit, form.ActionSubmitFailed}, rec.types())
	assert.True(t, store.SubmitEnabled())

	client.AssertNumberOfCalls(t, "Submit", 1)
	journal.AssertExpectations(t)
}

func TestUseCase_Execute_WithoutJournal(t *testing.T) {
	id := uuid.New()
	store, _ := validStore(t)

	sessions := new(mockSessions)
	sessions.On("Store", id).Return(store, nil)

	client := new(mockClient)
	client.On("Submit", mock.Anything, mock.Anything).
		Return(&submission.Receipt{StatusCode: 201, Body: json.RawMessage(`{}`)}, nil)

	uc := newUseCase(sessions, client, nil)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: id})
	require.NoError(t, err)
	assert.True(t, resp.State.IsSubmitted)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	t.Run("session not found", func(t *testing.T) {
		id := uuid.New()
		sessions := new(mockSessions)
		sessions.On("Store", id).Return(nil, formsService.ErrSessionNotFound)
		client := new(mockClient)

		uc := newUseCase(sessions, client, nil)
		_, err := uc.Execute(context.Background(), &Request{SessionID: id})

		assert.ErrorIs(t, err, ErrSessionNotFound)
		client.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("invalid record", func(t *testing.T) {
		id := uuid.New()
		store := form.NewStore(validation.New())
		rec := &recorder{}
		store.Subscribe(rec.listen)

		sessions := new(mockSessions)
		sessions.On("Store", id).Return(store, nil)
		client := new(mockClient)

		uc := newUseCase(sessions, client, nil)
		_, err := uc.Execute(context.Background(), &Request{SessionID: id})

		assert.ErrorIs(t, err, ErrFormInvalid)
		assert.Empty(t, rec.types())
		client.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("already submitting", func(t *testing.T) {
		id := uuid.New()
		store, _ := validStore(t)
		_, err := store.BeginSubmit()
		require.NoError(t, err)

		sessions := new(mockSessions)
		sessions.On("Store", id).Return(store, nil)
		client := new(mockClient)

		uc := newUseCase(sessions, client, nil)
		_, err = uc.Execute(context.Background(), &Request{SessionID: id})

		assert.ErrorIs(t, err, ErrAlreadySubmitting)
		client.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}

func TestUseCase_Execute_ConcurrentSubmitsSendOnce(t *testing.T) {
	id := uuid.New()
	store, rec := validStore(t)

	sessions := new(mockSessions)
	sessions.On("Store", id).Return(store, nil)

	release := make(chan time.Time)
	client := new(mockClient)
	client.On("Submit", mock.Anything, mock.Anything).
		WaitUntil(release).
		Return(&submission.Receipt{StatusCode: 200, Body: json.RawMessage(`{}`)}, nil)

	uc := newUseCase(sessions, client, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), &Request{SessionID: id})
		firstDone <- err
	}()

	require.Eventually(t, func() bool { return store.State().IsSubmitting }, time.Second, 5*time.Millisecond)

	_, err := uc.Execute(context.Background(), &Request{SessionID: id})
	assert.ErrorIs(t, err, ErrAlreadySubmitting)

	close(release)
	require.NoError(t, <-firstDone)

	client.AssertNumberOfCalls(t, "Submit", 1)
	assert.Equal(t, []form.ActionType{form.ActionSubmit, form.ActionSubmitSuccess}, rec.types())
}
