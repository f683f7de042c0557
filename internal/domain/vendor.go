package domain

// Vendor represents a supplier delivering to a site
type Vendor struct {
	ID     int64
	SiteID int64
	Name   string

	// DoorGroupID, when set, overrides rack-derived door group routing
	// for this vendor's order lines
	DoorGroupID *int64

	// EquipmentGroupID links the vendor to an equipment type whose
	// concurrent use is capped
	EquipmentGroupID *int64

	// MaxLoadCount caps the vendor's appointments per business day
	MaxLoadCount *int

	AllowSameDayAppointment bool
}

// Carrier represents a trucking company
type Carrier struct {
	ID   int64
	Name string
}

// SiteCarrier связь площадки и перевозчика; может принудительно назначать
// группу дверей для перевозчика независимо от маршрутизации заказов
type SiteCarrier struct {
	SiteID      int64
	CarrierID   int64
	DoorGroupID *int64
}

// SlotVendor предупреждение о превышении лимита загрузок поставщика.
// Возвращается вызывающей стороне вместо молчаливой фильтрации; решение
// блокировать или нет остаётся за ней.
type SlotVendor struct {
	VendorID     int64
	Name         string
	MaxLoadCount int
	LoadCount    int // existing qualifying appointments + 1 pending
}
