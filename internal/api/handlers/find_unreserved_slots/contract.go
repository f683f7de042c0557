package find_unreserved_slots

import (
	"context"

	findUnreservedSlots "github.com/m04kA/SMC-DockSchedulingService/internal/usecase/find_unreserved_slots"
)

type FindUnreservedSlotsUseCase interface {
	Execute(ctx context.Context, req *findUnreservedSlots.Request) (*findUnreservedSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
