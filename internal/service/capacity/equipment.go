package capacity

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// IsEquipmentAvailableForSlot проверяет, что у каждой группы оборудования,
// на которую опираются поставщики заказа, останется свободная единица в окне
// кандидатного слота.
//
// Исчерпанная ёмкость с областью "site" означает немедленный отказ. Ёмкости областей
// "door group" и "dock" отказывают, только когда исчерпаны все релевантные
// области одновременно.
func IsEquipmentAvailableForSlot(
	start time.Time,
	durationMinutes int,
	appointments []domain.Appointment,
	orderVendors []domain.Vendor,
	allVendors []domain.Vendor,
	equipment []domain.Equipment,
	doorIndex map[int64]*domain.Door,
) bool {
	slotEnd := start.Add(time.Duration(durationMinutes) * time.Minute)

	// vendor -> equipment group по всем поставщикам площадки
	vendorEquipGroup := make(map[int64]int64, len(allVendors))
	for i := range allVendors {
		if allVendors[i].EquipmentGroupID != nil {
			vendorEquipGroup[allVendors[i].ID] = *allVendors[i].EquipmentGroupID
		}
	}

	for i := range orderVendors {
		vendor := &orderVendors[i]
		if vendor.EquipmentGroupID == nil {
			continue
		}
		group := *vendor.EquipmentGroupID

		// Встречи, занимающие эту группу оборудования в окне слота
		overlappingCount := 0
		doorGroupIDs := make(map[int64]struct{})
		dockIDs := make(map[int64]struct{})

		for j := range appointments {
			a := &appointments[j]
			if !appointmentDrawsOnGroup(a, group, vendorEquipGroup) {
				continue
			}
			w := a.EffectiveWindow()
			if !timeutil.Overlaps(start, slotEnd, w.Start, w.End) {
				continue
			}

			overlappingCount++
			if len(a.DoorIDs) > 0 {
				if door, ok := doorIndex[a.DoorIDs[0]]; ok {
					doorGroupIDs[door.DoorGroupID] = struct{}{}
					dockIDs[door.DockID] = struct{}{}
				}
			}
		}

		equipSite := findEquipment(equipment, group, domain.EquipmentAvailabilitySite)
		equipDoorGroup := findEquipment(equipment, group, domain.EquipmentAvailabilityDoorGroup)
		equipDock := findEquipment(equipment, group, domain.EquipmentAvailabilityDock)

		if equipSite != nil && overlappingCount >= equipSite.Quantity {
			return false
		}

		if (equipDoorGroup != nil && len(doorGroupIDs) > 0) || (equipDock != nil && len(dockIDs) > 0) {
			doorGroupTotal := 0
			for id := range doorGroupIDs {
				doorGroupTotal += countScopedEquipment(equipment, group, domain.EquipmentAvailabilityDoorGroup, func(e *domain.Equipment) bool {
					return e.CoversDoorGroup(id)
				})
			}
			dockTotal := 0
			for id := range dockIDs {
				dockTotal += countScopedEquipment(equipment, group, domain.EquipmentAvailabilityDock, func(e *domain.Equipment) bool {
					return e.CoversDock(id)
				})
			}

			doorGroupExceeded := equipDoorGroup == nil || doorGroupTotal >= equipDoorGroup.Quantity
			dockExceeded := equipDock == nil || dockTotal >= equipDock.Quantity

			if doorGroupExceeded && dockExceeded {
				return false
			}
		}
	}

	return true
}

func appointmentDrawsOnGroup(a *domain.Appointment, group int64, vendorEquipGroup map[int64]int64) bool {
	for i := range a.Orders {
		if g, ok := vendorEquipGroup[a.Orders[i].VendorID]; ok && g == group {
			return true
		}
	}
	return false
}

func findEquipment(equipment []domain.Equipment, group int64, availability domain.EquipmentAvailability) *domain.Equipment {
	for i := range equipment {
		if equipment[i].EquipmentTypeID == group && equipment[i].Availability == availability {
			return &equipment[i]
		}
	}
	return nil
}

func countScopedEquipment(equipment []domain.Equipment, group int64, availability domain.EquipmentAvailability, covers func(*domain.Equipment) bool) int {
	count := 0
	for i := range equipment {
		if equipment[i].EquipmentTypeID == group && equipment[i].Availability == availability && covers(&equipment[i]) {
			count++
		}
	}
	return count
}
