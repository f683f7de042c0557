package domain

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/pkg/types"
)

// ScheduleAvailability scope of a recurring closure
type ScheduleAvailability string

const (
	ScheduleAvailabilitySite ScheduleAvailability = "site"
	ScheduleAvailabilityDock ScheduleAvailability = "dock"
	ScheduleAvailabilityDoor ScheduleAvailability = "door"
)

// Schedule is a recurring blackout period during which a scope
// (whole site, listed docks, or listed doors) does not receive
type Schedule struct {
	ID     int64
	SiteID int64
	Active bool

	Availability ScheduleAvailability
	DockIDs      []int64
	DoorIDs      []int64

	Days      WeekdaySet
	StartTime types.TimeString // local
	EndTime   types.TimeString // local; numerically before StartTime = spans midnight

	EffectiveStartDate *time.Time
	EffectiveEndDate   *time.Time

	// IsReceivingDay distinguishes closures applied on the current receiving
	// day from closures applied to future days
	IsReceivingDay bool
}

// EffectiveOn проверяет, что закрытие действует на указанный UTC-момент
func (s *Schedule) EffectiveOn(utc time.Time) bool {
	if s.EffectiveStartDate != nil && s.EffectiveStartDate.After(utc) {
		return false
	}
	if s.EffectiveEndDate != nil && s.EffectiveEndDate.Before(utc) {
		return false
	}
	return true
}

// AppliesToDoor проверяет, что закрытие покрывает дверь, её док или всю площадку
func (s *Schedule) AppliesToDoor(doorID, dockID int64) bool {
	if s.Availability == ScheduleAvailabilitySite {
		return true
	}
	for _, id := range s.DockIDs {
		if id == dockID {
			return true
		}
	}
	for _, id := range s.DoorIDs {
		if id == doorID {
			return true
		}
	}
	return false
}
