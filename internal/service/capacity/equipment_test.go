package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestIsEquipmentAvailableForSlot(t *testing.T) {
	slotStart := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	orderVendors := []domain.Vendor{{ID: 7, EquipmentGroupID: int64Ptr(5)}}
	allVendors := []domain.Vendor{
		{ID: 7, EquipmentGroupID: int64Ptr(5)},
		{ID: 8, EquipmentGroupID: int64Ptr(5)},
		{ID: 9},
	}

	siteEquipment := []domain.Equipment{
		{ID: 1, EquipmentTypeID: 5, Availability: domain.EquipmentAvailabilitySite, Quantity: 1},
	}

	occupying := domain.Appointment{
		ID: 100, DoorIDs: []int64{10},
		StartTime: slotStart, ScheduledDuration: 60,
		Status: domain.StatusScheduled,
		Orders: []domain.SlotOrder{{VendorID: 8}},
	}

	doorIndex := map[int64]*domain.Door{
		10: {ID: 10, DockID: 1, DoorGroupID: 3},
	}

	t.Run("site quantity exhausted in slot window", func(t *testing.T) {
		ok := IsEquipmentAvailableForSlot(slotStart, 60,
			[]domain.Appointment{occupying}, orderVendors, allVendors, siteEquipment, doorIndex)
		assert.False(t, ok)
	})

	t.Run("occupying appointment outside the window", func(t *testing.T) {
		later := occupying
		later.StartTime = slotStart.Add(2 * time.Hour)

		ok := IsEquipmentAvailableForSlot(slotStart, 60,
			[]domain.Appointment{later}, orderVendors, allVendors, siteEquipment, doorIndex)
		assert.True(t, ok)
	})

	t.Run("vendor without equipment group", func(t *testing.T) {
		free := []domain.Vendor{{ID: 9}}
		ok := IsEquipmentAvailableForSlot(slotStart, 60,
			[]domain.Appointment{occupying}, free, allVendors, siteEquipment, doorIndex)
		assert.True(t, ok)
	})

	t.Run("no equipment records", func(t *testing.T) {
		ok := IsEquipmentAvailableForSlot(slotStart, 60,
			[]domain.Appointment{occupying}, orderVendors, allVendors, nil, doorIndex)
		assert.True(t, ok)
	})

	t.Run("dock scope exhausted only with door group", func(t *testing.T) {
		// Есть ёмкость дока, но нет записи области "door group": обе области
		// считаются исчерпанными только вместе
		dockEquipment := []domain.Equipment{
			{ID: 2, EquipmentTypeID: 5, Availability: domain.EquipmentAvailabilityDock,
				Quantity: 1, DockIDs: []int64{1}},
		}

		ok := IsEquipmentAvailableForSlot(slotStart, 60,
			[]domain.Appointment{occupying}, orderVendors, allVendors, dockEquipment, doorIndex)
		assert.False(t, ok)

		// Добавленная непокрытая ёмкость группы дверей не исчерпана, слот
		// остаётся доступным
		mixed := append(dockEquipment, domain.Equipment{
			ID: 3, EquipmentTypeID: 5, Availability: domain.EquipmentAvailabilityDoorGroup,
			Quantity: 2, DoorGroupIDs: []int64{3},
		})
		ok = IsEquipmentAvailableForSlot(slotStart, 60,
			[]domain.Appointment{occupying}, orderVendors, allVendors, mixed, doorIndex)
		assert.True(t, ok)
	})
}
