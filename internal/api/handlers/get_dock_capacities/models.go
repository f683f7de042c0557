package get_dock_capacities

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	getDockCapacities "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/get_dock_capacities"
)

// DockCapacitiesResponse HTTP response model
type DockCapacitiesResponse struct {
	SiteID     int64                        `json:"siteId"`
	Date       string                       `json:"date"`
	Capacities []handlers.DockCapacityModel `json:"capacities"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(siteID int64, dateStr string, pendingCases, pendingPallets float64, pendingAppt bool) (*getDockCapacities.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getDockCapacities.Request{
		SiteID:         siteID,
		Date:           date,
		PendingCases:   pendingCases,
		PendingPallets: pendingPallets,
		PendingAppt:    pendingAppt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(siteID int64, date time.Time, resp *getDockCapacities.Response) *DockCapacitiesResponse {
	return &DockCapacitiesResponse{
		SiteID:     siteID,
		Date:       date.Format(domain.DateFormat),
		Capacities: handlers.DockCapacityModels(resp.Capacities),
	}
}
