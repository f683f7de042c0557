package find_reserved_slots

import (
	"context"

	findReservedSlots "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/find_reserved_slots"
)

type FindReservedSlotsUseCase interface {
	Execute(ctx context.Context, req *findReservedSlots.Request) (*findReservedSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
