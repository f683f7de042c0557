package resolve_door_group

import (
	"context"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

// SiteRepository интерфейс репозитория площадок
type SiteRepository interface {
	GetByID(ctx context.Context, siteID int64) (*domain.Site, error)
	// ListCarrierOverrides возвращает привязки площадка-перевозчик для указанных перевозчиков
	ListCarrierOverrides(ctx context.Context, siteID int64, carrierIDs []int64) ([]domain.SiteCarrier, error)
	// ListRacks возвращает рэки площадки с указанными ID
	ListRacks(ctx context.Context, siteID int64, rackIDs []int64) ([]domain.Rack, error)
	// GetDoorGroup возвращает группу дверей площадки
	GetDoorGroup(ctx context.Context, siteID, doorGroupID int64) (*domain.DoorGroup, error)
	// ListDoorsByDoorGroup возвращает все двери группы
	ListDoorsByDoorGroup(ctx context.Context, doorGroupID int64) ([]domain.Door, error)
	// ListDocksByIDs возвращает доки по списку ID
	ListDocksByIDs(ctx context.Context, dockIDs []int64) ([]domain.Dock, error)
	// ListDockIDsByDoorGroup возвращает ID доков, имеющих двери указанной группы
	ListDockIDsByDoorGroup(ctx context.Context, doorGroupID int64) ([]int64, error)
}

// VendorRepository интерфейс репозитория поставщиков
type VendorRepository interface {
	ListBySite(ctx context.Context, siteID int64, vendorIDs []int64) ([]domain.Vendor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
