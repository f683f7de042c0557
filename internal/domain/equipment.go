package domain

// EquipmentAvailability scope at which an equipment quantity cap applies
type EquipmentAvailability string

const (
	EquipmentAvailabilitySite      EquipmentAvailability = "site"
	EquipmentAvailabilityDoorGroup EquipmentAvailability = "door_group"
	EquipmentAvailabilityDock      EquipmentAvailability = "dock"
)

// Equipment per-equipment-type quantity cap with its availability scope
type Equipment struct {
	ID              int64
	SiteID          int64
	EquipmentTypeID int64
	Availability    EquipmentAvailability
	Quantity        int

	// Scoped entities for door-group/dock availability
	DoorGroupIDs []int64
	DockIDs      []int64
}

// CoversDoorGroup проверяет, что запись покрывает группу дверей
func (e *Equipment) CoversDoorGroup(doorGroupID int64) bool {
	for _, id := range e.DoorGroupIDs {
		if id == doorGroupID {
			return true
		}
	}
	return false
}

// CoversDock проверяет, что запись покрывает док
func (e *Equipment) CoversDock(dockID int64) bool {
	for _, id := range e.DockIDs {
		if id == dockID {
			return true
		}
	}
	return false
}
