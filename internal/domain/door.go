package domain

// Door represents a single receiving door on a dock
type Door struct {
	ID          int64
	DockID      int64
	DoorGroupID int64
	Name        string
	Active      bool

	// MinUnitCount / MaxUnitCount is the order-size band the door serves,
	// in the site's unit of measure
	MinUnitCount int
	MaxUnitCount int

	// Priority breaks ties between doors offering the same start time;
	// lower is preferred
	Priority int
}

// ServesUnitCount проверяет, что суммарный объём заказов попадает в полосу двери
func (d *Door) ServesUnitCount(totalUnits float64) bool {
	return float64(d.MinUnitCount) <= totalUnits && float64(d.MaxUnitCount) >= totalUnits
}

// DoorGroup is a named set of doors treated as one scheduling unit
type DoorGroup struct {
	ID     int64
	SiteID int64
	Name   string
}

// Rack привязывает детали заказа к группе дверей
type Rack struct {
	ID          int64
	SiteID      int64
	DoorGroupID int64
}
