package get_dock_capacities

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

// SiteRepository интерфейс репозитория площадок
type SiteRepository interface {
	GetByID(ctx context.Context, siteID int64) (*domain.Site, error)
	// ListDocks возвращает все доки площадки
	ListDocks(ctx context.Context, siteID int64) ([]domain.Dock, error)
	// ListDoors возвращает все двери площадки
	ListDoors(ctx context.Context, siteID int64) ([]domain.Door, error)
}

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	ListBlockingInWindow(ctx context.Context, siteID int64, from, to time.Time) ([]domain.Appointment, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	ListActiveBySite(ctx context.Context, siteID int64) ([]domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
