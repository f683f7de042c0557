package find_reserved_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	findReservedSlots "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/find_reserved_slots"
)

const (
	msgInvalidSiteID      = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrders      = "некорректный набор заказов или дата, ожидается YYYY-MM-DD"
	msgSiteNotFound       = "площадка не найдена"
)

type Handler struct {
	useCase FindReservedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase FindReservedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sites/{siteId}/reserved-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	siteID, err := strconv.ParseInt(vars["siteId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /sites/{id}/reserved-slots - Invalid site ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSiteID)
		return
	}

	var req FindSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sites/{id}/reserved-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(siteID, time.Now().UTC())
	if err != nil {
		h.logger.Warn("POST /sites/{id}/reserved-slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrders)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findReservedSlots.ErrInvalidInput):
			h.logger.Warn("POST /sites/{id}/reserved-slots - Invalid input: site_id=%d, error=%v", siteID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, findReservedSlots.ErrSiteNotFound):
			h.logger.Warn("POST /sites/{id}/reserved-slots - Site not found: site_id=%d", siteID)
			handlers.RespondNotFound(w, msgSiteNotFound)

		default:
			h.logger.Error("POST /sites/{id}/reserved-slots - Failed to find slots: site_id=%d, error=%v", siteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sites/{id}/reserved-slots - Search finished: site_id=%d, success=%t, slots=%d",
		siteID, result.Success, len(result.Data.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
