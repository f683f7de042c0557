package find_unreserved_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/usecase/resolve_door_group"
)

// DoorGroupResolver определяет группу дверей и доки для набора заказов
type DoorGroupResolver interface {
	Execute(ctx context.Context, req *resolve_door_group.Request) (*resolve_door_group.Response, error)
}

// SiteRepository интерфейс репозитория площадок
type SiteRepository interface {
	GetByID(ctx context.Context, siteID int64) (*domain.Site, error)
}

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	// ListBlockingInWindow возвращает встречи площадки в блокирующих статусах,
	// чьё фактическое окно пересекает [from, to)
	ListBlockingInWindow(ctx context.Context, siteID int64, from, to time.Time) ([]domain.Appointment, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	ListActiveBySite(ctx context.Context, siteID int64) ([]domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория расписаний закрытий
type ScheduleRepository interface {
	ListActiveBySite(ctx context.Context, siteID int64) ([]domain.Schedule, error)
}

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	ListBySite(ctx context.Context, siteID int64) ([]domain.Equipment, error)
}

// VendorRepository интерфейс репозитория поставщиков.
// Пустой список vendorIDs возвращает всех поставщиков площадки.
type VendorRepository interface {
	ListBySite(ctx context.Context, siteID int64, vendorIDs []int64) ([]domain.Vendor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
