package resolve_door_group

import (
	"context"

	resolveDoorGroup "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/resolve_door_group"
)

type ResolveDoorGroupUseCase interface {
	Execute(ctx context.Context, req *resolveDoorGroup.Request) (*resolveDoorGroup.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
