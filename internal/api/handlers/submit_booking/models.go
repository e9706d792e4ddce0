package submit_booking

import (
	"encoding/json"

	"github.com/m04kA/SMC-TrainingReservation/internal/form"
	submitBooking "github.com/m04kA/SMC-TrainingReservation/internal/usecase/submit_booking"
)

// SubmitBookingResponse ответ после успешной отправки
type SubmitBookingResponse struct {
	State   form.State      `json:"state"`
	Receipt json.RawMessage `json:"receipt"`
}

func FromUseCaseResponse(resp *submitBooking.Response) SubmitBookingResponse {
	return SubmitBookingResponse{
		State:   resp.State,
		Receipt: resp.Receipt,
	}
}
