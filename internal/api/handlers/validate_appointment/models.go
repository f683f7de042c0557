package validate_appointment

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	validateAppointment "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/validate_appointment"
)

// ValidateAppointmentRequest HTTP request model
type ValidateAppointmentRequest struct {
	DoorIDs         []int64 `json:"doorIds"`
	StartTime       string  `json:"startTime"` // RFC3339, UTC
	DurationMinutes int     `json:"durationMinutes"`

	ExcludeAppointmentID int64 `json:"excludeAppointmentId,omitempty"`
	IsCarrierCaller      bool  `json:"isCarrierCaller,omitempty"`
	SameDayDisallowed    bool  `json:"sameDayDisallowed,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP модели (с парсингом времени).
// Момент "сейчас" фиксируется на границе API.
func (m *ValidateAppointmentRequest) ToUseCaseRequest(siteID int64, now time.Time) (*validateAppointment.Request, error) {
	start, err := time.Parse(time.RFC3339, m.StartTime)
	if err != nil {
		return nil, err
	}
	return &validateAppointment.Request{
		SiteID:               siteID,
		DoorIDs:              m.DoorIDs,
		StartTime:            start.UTC(),
		DurationMinutes:      m.DurationMinutes,
		CurrentUTCTime:       now,
		ExcludeAppointmentID: m.ExcludeAppointmentID,
		IsCarrierCaller:      m.IsCarrierCaller,
		SameDayDisallowed:    m.SameDayDisallowed,
	}, nil
}

// ValidateAppointmentResponse HTTP response model
type ValidateAppointmentResponse struct {
	Valid    bool                    `json:"valid"`
	Occupied bool                    `json:"occupied"`
	Messages []handlers.MessageModel `json:"messages,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateAppointment.Response) *ValidateAppointmentResponse {
	return &ValidateAppointmentResponse{
		Valid:    resp.Valid,
		Occupied: resp.Occupied,
		Messages: handlers.MessageModels(resp.Messages),
	}
}
