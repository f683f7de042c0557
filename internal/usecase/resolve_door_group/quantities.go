package resolve_door_group

import (
	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

// doorGroupQuantity объём заказа, отнесённый к группе дверей
type doorGroupQuantity struct {
	doorGroupID int64
	quantity    float64
}

// detailDoorGroup определяет группу дверей строки заказа: привязка
// поставщика имеет приоритет над группой рэка. При нуле строка не маршрутизируется.
func detailDoorGroup(d *domain.OrderDetail, racks map[int64]*domain.Rack, vendorDoorGroup map[int64]int64) int64 {
	if dg, ok := vendorDoorGroup[d.VendorID]; ok {
		return dg
	}
	if rack, ok := racks[d.RackID]; ok {
		return rack.DoorGroupID
	}
	return 0
}

// accumulateOrderQuantities распределяет объём заказа по группам дверей его
// строк. Когда хотя бы у одной маршрутизируемой строки не хватает данных для
// вычисления объёма, весь заказ целиком относится к группе с наибольшим
// числом строк.
func accumulateOrderQuantities(
	order *domain.SlotOrder,
	unitType domain.UnitType,
	racks map[int64]*domain.Rack,
	vendorDoorGroup map[int64]int64,
) []doorGroupQuantity {
	type bucket struct {
		quantity float64
		lines    int
	}

	byGroup := make(map[int64]*bucket)
	groupOrder := make([]int64, 0, len(order.Details))
	incomplete := false

	for i := range order.Details {
		d := &order.Details[i]
		dg := detailDoorGroup(d, racks, vendorDoorGroup)
		if dg == 0 {
			continue
		}

		b, ok := byGroup[dg]
		if !ok {
			b = &bucket{}
			byGroup[dg] = b
			groupOrder = append(groupOrder, dg)
		}
		b.lines++

		switch unitType {
		case domain.UnitTypePallets:
			if d.HasCompletePalletData() {
				b.quantity += d.PalletEstimate()
			} else {
				incomplete = true
			}
		default:
			if d.CaseCount != nil {
				b.quantity += float64(*d.CaseCount)
			} else {
				incomplete = true
			}
		}
	}

	if len(groupOrder) == 0 {
		return nil
	}

	if incomplete {
		// Большинство по числу строк; при равенстве берётся первая встреченная группа
		best := groupOrder[0]
		for _, dg := range groupOrder[1:] {
			if byGroup[dg].lines > byGroup[best].lines {
				best = dg
			}
		}
		return []doorGroupQuantity{{doorGroupID: best, quantity: order.UnitCount(unitType)}}
	}

	result := make([]doorGroupQuantity, 0, len(groupOrder))
	for _, dg := range groupOrder {
		result = append(result, doorGroupQuantity{doorGroupID: dg, quantity: byGroup[dg].quantity})
	}
	return result
}

// dominantDoorGroup выбирает группу с наибольшим суммарным объёмом;
// при равенстве берётся первая встреченная
func dominantDoorGroup(quantities []doorGroupQuantity) int64 {
	totals := make(map[int64]float64)
	order := make([]int64, 0, len(quantities))
	for _, q := range quantities {
		if _, ok := totals[q.doorGroupID]; !ok {
			order = append(order, q.doorGroupID)
		}
		totals[q.doorGroupID] += q.quantity
	}

	if len(order) == 0 {
		return 0
	}

	best := order[0]
	for _, dg := range order[1:] {
		if totals[dg] > totals[best] {
			best = dg
		}
	}
	return best
}
