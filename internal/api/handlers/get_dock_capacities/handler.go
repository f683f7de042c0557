package get_dock_capacities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	getDockCapacities "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/get_dock_capacities"
)

const (
	msgInvalidSiteID  = "некорректный ID площадки"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPending = "некорректный прогнозируемый объём"
	msgSiteNotFound   = "площадка не найдена"
)

type Handler struct {
	useCase GetDockCapacitiesUseCase
	logger  Logger
}

func NewHandler(useCase GetDockCapacitiesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sites/{siteId}/dock-capacities
// Query params: date (required, YYYY-MM-DD), pendingCases, pendingPallets, pendingAppt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	siteID, err := strconv.ParseInt(vars["siteId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /sites/{id}/dock-capacities - Invalid site ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSiteID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /sites/{id}/dock-capacities - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	pendingCases, pendingPallets, err := parsePending(r)
	if err != nil {
		h.logger.Warn("GET /sites/{id}/dock-capacities - Invalid pending volume: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPending)
		return
	}
	pendingAppt := r.URL.Query().Get("pendingAppt") == "true"

	useCaseReq, err := ToUseCaseRequest(siteID, dateStr, pendingCases, pendingPallets, pendingAppt)
	if err != nil {
		h.logger.Warn("GET /sites/{id}/dock-capacities - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDockCapacities.ErrInvalidInput):
			h.logger.Warn("GET /sites/{id}/dock-capacities - Invalid input: site_id=%d, error=%v", siteID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getDockCapacities.ErrSiteNotFound):
			h.logger.Warn("GET /sites/{id}/dock-capacities - Site not found: site_id=%d", siteID)
			handlers.RespondNotFound(w, msgSiteNotFound)

		default:
			h.logger.Error("GET /sites/{id}/dock-capacities - Failed to build capacities: site_id=%d, error=%v", siteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sites/{id}/dock-capacities - Capacities built: site_id=%d, date=%s, docks=%d",
		siteID, dateStr, len(result.Capacities))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(siteID, useCaseReq.Date, result))
}

func parsePending(r *http.Request) (float64, float64, error) {
	var cases, pallets float64
	var err error
	if s := r.URL.Query().Get("pendingCases"); s != "" {
		if cases, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, 0, err
		}
	}
	if s := r.URL.Query().Get("pendingPallets"); s != "" {
		if pallets, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, 0, err
		}
	}
	return cases, pallets, nil
}
