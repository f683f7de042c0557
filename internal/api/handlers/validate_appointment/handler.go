package validate_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	validateAppointment "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/validate_appointment"
)

const (
	msgInvalidSiteID      = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректное время начала, ожидается RFC3339"
	msgSiteNotFound       = "площадка не найдена"
	msgDoorNotFound       = "дверь не найдена"
)

type Handler struct {
	useCase ValidateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ValidateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sites/{siteId}/appointments/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	siteID, err := strconv.ParseInt(vars["siteId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /sites/{id}/appointments/validate - Invalid site ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSiteID)
		return
	}

	var req ValidateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sites/{id}/appointments/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(siteID, time.Now().UTC())
	if err != nil {
		h.logger.Warn("POST /sites/{id}/appointments/validate - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateAppointment.ErrInvalidInput):
			h.logger.Warn("POST /sites/{id}/appointments/validate - Invalid input: site_id=%d, error=%v", siteID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, validateAppointment.ErrSiteNotFound):
			h.logger.Warn("POST /sites/{id}/appointments/validate - Site not found: site_id=%d", siteID)
			handlers.RespondNotFound(w, msgSiteNotFound)

		case errors.Is(err, validateAppointment.ErrDoorNotFound):
			h.logger.Warn("POST /sites/{id}/appointments/validate - Door not found: site_id=%d, error=%v", siteID, err)
			handlers.RespondNotFound(w, msgDoorNotFound)

		default:
			h.logger.Error("POST /sites/{id}/appointments/validate - Validation failed: site_id=%d, error=%v", siteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sites/{id}/appointments/validate - Validated: site_id=%d, valid=%t, occupied=%t",
		siteID, result.Valid, result.Occupied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
