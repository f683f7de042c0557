package domain

import "time"

// OrderDetail строка заказа; источник маршрутизации по группам дверей
type OrderDetail struct {
	ID       int64
	OrderID  int64
	VendorID int64
	RackID   int64

	CaseCount *int
	PalletHI  *int // cases per layer
	PalletTI  *int // layers per pallet
}

// HasCompletePalletData returns true when the line carries enough data to
// derive its own pallet count
func (d *OrderDetail) HasCompletePalletData() bool {
	return d.CaseCount != nil && *d.CaseCount != 0 &&
		d.PalletHI != nil && *d.PalletHI != 0 &&
		d.PalletTI != nil && *d.PalletTI != 0
}

// PalletEstimate derives the line's pallet count from case count and
// pallet TI/HI. Valid only when HasCompletePalletData.
func (d *OrderDetail) PalletEstimate() float64 {
	return float64(*d.CaseCount) / float64(*d.PalletHI**d.PalletTI)
}

// SlotOrder заказ, участвующий в подборе слота
type SlotOrder struct {
	ID          int64
	VendorID    int64
	DueDate     *time.Time
	CaseCount   int
	PalletCount int
	Details     []OrderDetail
}

// UnitCount объём заказа в единицах измерения площадки
func (o *SlotOrder) UnitCount(unitType UnitType) float64 {
	if unitType == UnitTypePallets {
		return float64(o.PalletCount)
	}
	return float64(o.CaseCount)
}

// OrderTotalUnits суммарный объём набора заказов в единицах площадки.
// palletOverride, если задан, заменяет суммарный паллетный объём.
func OrderTotalUnits(unitType UnitType, palletOverride *int, orders []SlotOrder) float64 {
	if unitType == UnitTypePallets && palletOverride != nil {
		return float64(*palletOverride)
	}
	var total float64
	for i := range orders {
		total += orders[i].UnitCount(unitType)
	}
	return total
}

// OrderTotalPallets суммарный паллетный объём набора заказов
func OrderTotalPallets(palletOverride *int, orders []SlotOrder) int {
	if palletOverride != nil {
		return *palletOverride
	}
	var total int
	for i := range orders {
		total += orders[i].PalletCount
	}
	return total
}

// OrderTotalCases суммарный кейсовый объём набора заказов
func OrderTotalCases(orders []SlotOrder) int {
	var total int
	for i := range orders {
		total += orders[i].CaseCount
	}
	return total
}

// CollectVendorIDs собирает уникальные ID поставщиков заказов и их строк
func CollectVendorIDs(orders []SlotOrder) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0, len(orders))
	add := func(id int64) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for i := range orders {
		add(orders[i].VendorID)
		for j := range orders[i].Details {
			add(orders[i].Details[j].VendorID)
		}
	}
	return ids
}
