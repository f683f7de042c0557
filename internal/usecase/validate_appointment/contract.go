package validate_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

// SiteRepository интерфейс репозитория площадок
type SiteRepository interface {
	GetByID(ctx context.Context, siteID int64) (*domain.Site, error)
	// ListDoorsByIDs возвращает двери по списку ID
	ListDoorsByIDs(ctx context.Context, doorIDs []int64) ([]domain.Door, error)
	// ListDocksByIDs возвращает доки по списку ID
	ListDocksByIDs(ctx context.Context, dockIDs []int64) ([]domain.Dock, error)
}

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	// AnyBlockingOnDoors проверяет точечно, занята ли хотя бы одна из дверей
	// блокирующей встречей в окне [from, to). Запрос выполняется к хранилищу
	// напрямую: это финальная перепроверка перед фиксацией брони.
	AnyBlockingOnDoors(ctx context.Context, siteID int64, doorIDs []int64, from, to time.Time, excludeID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
