package resolve_door_group

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	resolveDoorGroup "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/resolve_door_group"
)

const (
	msgInvalidSiteID      = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrders      = "некорректный набор заказов, ожидается dueDate в формате YYYY-MM-DD"
	msgSiteNotFound       = "площадка не найдена"
)

type Handler struct {
	useCase ResolveDoorGroupUseCase
	logger  Logger
}

func NewHandler(useCase ResolveDoorGroupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sites/{siteId}/door-group
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	siteID, err := strconv.ParseInt(vars["siteId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /sites/{id}/door-group - Invalid site ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSiteID)
		return
	}

	var req ResolveDoorGroupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sites/{id}/door-group - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(siteID)
	if err != nil {
		h.logger.Warn("POST /sites/{id}/door-group - Failed to parse orders: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrders)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveDoorGroup.ErrInvalidInput):
			h.logger.Warn("POST /sites/{id}/door-group - Invalid input: site_id=%d, error=%v", siteID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, resolveDoorGroup.ErrSiteNotFound):
			h.logger.Warn("POST /sites/{id}/door-group - Site not found: site_id=%d", siteID)
			handlers.RespondNotFound(w, msgSiteNotFound)

		default:
			h.logger.Error("POST /sites/{id}/door-group - Failed to resolve door group: site_id=%d, error=%v", siteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sites/{id}/door-group - Resolved: site_id=%d, success=%t, docks=%d",
		siteID, result.Success, len(result.Data.DockList))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
