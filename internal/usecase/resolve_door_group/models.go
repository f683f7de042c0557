package resolve_door_group

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// Request параметры определения группы дверей для набора заказов
type Request struct {
	SiteID int64
	Orders []domain.SlotOrder

	// DoorGroupID явно запрошенная группа (0, если не задана); привязка
	// перевозчика к площадке имеет приоритет над этим полем
	DoorGroupID int64

	// Vendors предзагруженные поставщики заказов; nil: загрузить по заказам
	Vendors []domain.Vendor

	// IncludeInactiveDoors не отфильтровывать неактивные двери группы;
	// автоназначение рассматривает все двери
	IncludeInactiveDoors bool

	CarrierID         int64 // carrier of record
	DeliveryCarrierID int64
}

// Response результат определения группы дверей
type Response struct {
	Success  bool
	Messages []domain.Message
	Data     DoorGroupAndDocks
}

// DoorGroupAndDocks разрешённая группа дверей и её доки с допустимыми
// диапазонами дат поставки
type DoorGroupAndDocks struct {
	DoorGroupID   *int64
	DoorGroupName string

	// DoorsByDock двери группы, сгруппированные по докам; неактивные
	// включаются только при IncludeInactiveDoors
	DoorsByDock map[int64][]domain.Door

	// Docks доки, обслуживаемые дверями группы
	Docks []domain.Dock

	DockList []DockItem

	// DeliveryWindowExists true, когда хотя бы один док принимает заказы
	DeliveryWindowExists bool
	FirstDate            *time.Time // local to the site
	LastDate             *time.Time // local to the site

	// IdealDate дата поставки заказа с наибольшим объёмом
	IdealDate *time.Time
}

// DockItem док с границами допустимого диапазона дат (в локальном времени площадки)
type DockItem struct {
	DockID    int64
	DockName  string
	FirstDate *time.Time
	LastDate  *time.Time

	// Range допустимый диапазон в UTC; nil: док не принимает этот набор заказов
	Range *timeutil.TimeRange
}
