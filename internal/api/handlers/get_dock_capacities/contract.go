package get_dock_capacities

import (
	"context"

	getDockCapacities "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/get_dock_capacities"
)

type GetDockCapacitiesUseCase interface {
	Execute(ctx context.Context, req *getDockCapacities.Request) (*getDockCapacities.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
