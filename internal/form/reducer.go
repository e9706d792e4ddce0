package form

import "github.com/m04kA/SMC-TrainingReservation/internal/domain"

// Reduce применяет действие к состоянию и возвращает новое состояние
// Функция чистая: исходное состояние не изменяется, ввод-вывода и валидации нет.
// Неизвестные действия и значения неподходящего типа оставляют состояние без изменений
func Reduce(state State, action Action) State {
	switch action.Type {
	case ActionSetFieldValue:
		data, err := state.Data.WithValue(action.Field, action.Value)
		if err != nil {
			return state
		}
		next := state.Clone()
		next.Data = data
		return next

	case ActionValidateField:
		if _, err := domain.ParseField(string(action.Field)); err != nil {
			return state
		}
		next := state.Clone()
		if action.Message == nil {
			delete(next.Errors, action.Field)
		} else {
			next.Errors[action.Field] = *action.Message
		}
		return next

	case ActionSubmit:
		next := state.Clone()
		next.IsSubmitting = true
		return next

	case ActionSubmitSuccess:
		next := state.Clone()
		next.IsSubmitting = false
		next.IsSubmitted = true
		next.SubmitError = ""
		return next

	case ActionSubmitFailed:
		next := state.Clone()
		next.IsSubmitting = false
		next.IsSubmitted = false
		next.SubmitError = ""
		if action.Message != nil {
			next.SubmitError = *action.Message
		}
		return next

	case ActionReset:
		return InitialState()

	default:
		return state
	}
}
