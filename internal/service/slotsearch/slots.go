package slotsearch

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// GenerateSlotTimes перечисляет UTC-времена начала кандидатных слотов на один
// бизнес-день площадки.
//
// dayUTC задаёт UTC-момент локальной полуночи целевой даты. Нулевая точка дня
// сдвигается на BusinessDayOffset площадки через правила зоны (не наивным
// добавлением часов), последний слот должен целиком помещаться до начала
// следующего бизнес-дня.
func GenerateSlotTimes(site *domain.Site, loc *time.Location, dayUTC time.Time, durationMinutes, intervalMinutes int) []time.Time {
	if durationMinutes > domain.MaxAppointmentDurationMinutes {
		durationMinutes = domain.MaxAppointmentDurationMinutes
	}
	if intervalMinutes <= 0 {
		intervalMinutes = domain.DefaultAppointmentIntervalMinutes
	}

	offset := time.Duration(site.BusinessDayOffset) * time.Hour

	start := timeutil.LocalClockUTC(loc, dayUTC, offset)
	end := timeutil.LocalClockUTC(loc, timeutil.AddLocalDays(loc, dayUTC, 1), offset)

	lastStart := end.Add(-time.Duration(durationMinutes) * time.Minute)
	step := time.Duration(intervalMinutes) * time.Minute

	var slots []time.Time
	for t := start; !t.After(lastStart); t = t.Add(step) {
		slots = append(slots, t)
	}
	return slots
}
