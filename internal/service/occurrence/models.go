package occurrence

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

// ReservationOccurrence конкретное вхождение шаблона резервации на один
// календарный день: локальное время начала уже спроецировано в UTC
type ReservationOccurrence struct {
	ReservationID   int64
	DoorIDs         []int64
	StartTime       time.Time // UTC
	DurationMinutes int

	MinPallets *int
	MaxPallets *int
	MinCases   *int
	MaxCases   *int

	CarrierIDs []int64
	VendorIDs  []int64
}

// Window занимаемое вхождением окно
func (o *ReservationOccurrence) Window() (time.Time, time.Time) {
	return o.StartTime, o.StartTime.Add(time.Duration(o.DurationMinutes) * time.Minute)
}

// IncludesDoor проверяет, что дверь входит в набор дверей вхождения
func (o *ReservationOccurrence) IncludesDoor(doorID int64) bool {
	for _, id := range o.DoorIDs {
		if id == doorID {
			return true
		}
	}
	return false
}

// ClosureWindow конкретное окно закрытия на один календарный день
type ClosureWindow struct {
	ScheduleID   int64
	Availability domain.ScheduleAvailability
	DockIDs      []int64
	DoorIDs      []int64
	Start        time.Time // UTC
	End          time.Time // UTC
}

// AppliesToDoor проверяет, что закрытие покрывает дверь, её док или площадку
func (c *ClosureWindow) AppliesToDoor(doorID, dockID int64) bool {
	if c.Availability == domain.ScheduleAvailabilitySite {
		return true
	}
	for _, id := range c.DockIDs {
		if id == dockID {
			return true
		}
	}
	for _, id := range c.DoorIDs {
		if id == doorID {
			return true
		}
	}
	return false
}
