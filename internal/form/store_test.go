package form

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingReservation/internal/domain"
	"github.com/m04kA/SMC-TrainingReservation/internal/validation"
)

func fillValid(s *Store) {
	s.Dispatch(SetFieldValue(domain.FieldFirstName, "Anna"))
	s.Dispatch(SetFieldValue(domain.FieldLastName, "Kowalska"))
	s.Dispatch(SetFieldValue(domain.FieldEmailAddress, "anna@example.com"))
	s.Dispatch(SetFieldValue(domain.FieldAge, 30))
	s.Dispatch(SetFieldValue(domain.FieldPhoto, domain.Photo{Filename: "me.png", Size: 3, ContentType: "image/png", Data: []byte("png")}))
	s.Dispatch(SetFieldValue(domain.FieldDate, "2024-03-12"))
	s.Dispatch(SetFieldValue(domain.FieldTime, "12:00"))
}

func TestStore_RevalidatesAfterEveryMutation(t *testing.T) {
	s := NewStore(validation.New())
	assert.False(t, s.SubmitEnabled())
	assert.Equal(t, validation.KindInvalid, s.Validity().Kind)

	fillValid(s)
	assert.True(t, s.Validity().IsValid())
	assert.True(t, s.SubmitEnabled())

	s.Dispatch(SetFieldValue(domain.FieldTime, ""))
	assert.False(t, s.SubmitEnabled())
	assert.Contains(t, s.Validity().Errors, domain.FieldTime)
}

func TestStore_SubmitEnabledFalseWhileSubmitting(t *testing.T) {
	s := NewStore(validation.New())
	fillValid(s)

	s.Dispatch(Submit())

	assert.True(t, s.Validity().IsValid())
	assert.False(t, s.SubmitEnabled())
}

func TestStore_BeginSubmit(t *testing.T) {
	s := NewStore(validation.New())

	_, err := s.BeginSubmit()
	assert.ErrorIs(t, err, ErrFormInvalid)

	fillValid(s)
	state, err := s.BeginSubmit()
	require.NoError(t, err)
	assert.True(t, state.IsSubmitting)
	assert.Equal(t, "Anna", state.Data.FirstName)

	_, err = s.BeginSubmit()
	assert.ErrorIs(t, err, ErrAlreadySubmitting)
}

func TestStore_ListenersReceiveEveryAction(t *testing.T) {
	s := NewStore(validation.New())

	var got []ActionType
	s.Subscribe(func(action Action, state State) {
		got = append(got, action.Type)
	})

	s.Dispatch(SetFieldValue(domain.FieldFirstName, "Anna"))
	s.Dispatch(Reset())

	assert.Equal(t, []ActionType{ActionSetFieldValue, ActionReset}, got)
}

func TestStore_StateIsACopy(t *testing.T) {
	s := NewStore(validation.New())

	state := s.State()
	state.Errors[domain.FieldAge] = "mutated"

	assert.NotContains(t, s.State().Errors, domain.FieldAge)
}

func TestStore_ResetAfterSubmission(t *testing.T) {
	s := NewStore(validation.New())
	fillValid(s)
	_, err := s.BeginSubmit()
	require.NoError(t, err)
	s.Dispatch(SubmitSuccess())

	state := s.Dispatch(Reset())

	assert.Equal(t, InitialState(), state)
	assert.False(t, s.SubmitEnabled())
}

func TestStore_SnapshotIsConsistent(t *testing.T) {
	s := NewStore(validation.New())
	fillValid(s)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.Dispatch(Submit())
			s.Dispatch(SubmitFailed("try again"))
		}
	}()

	for i := 0; i < 500; i++ {
		state, enabled := s.Snapshot()
		assert.Equal(t, !state.IsSubmitting, enabled)
	}
	wg.Wait()

	state, enabled := s.Snapshot()
	assert.False(t, state.IsSubmitting)
	assert.True(t, enabled)
	assert.Equal(t, "try again", state.SubmitError)
}
