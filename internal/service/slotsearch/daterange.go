package slotsearch

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// maxUTC верхняя граница "открытого" интервала; года выше 3000 интерпретируются
// вызывающей стороной как отсутствие ограничения
var maxUTC = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// ValidDateRangeForDock computes the dock's valid delivery range for a set of
// order due dates: per due date, the closed interval from UTC midnight of
// (due − early threshold) to one second before UTC midnight of
// (due + late threshold + 1), intersected across all due dates.
//
// Returns nil when the intervals share no common point: the dock cannot
// accommodate the order set on any date. A single due date always yields a
// non-nil interval.
func ValidDateRangeForDock(dock *domain.Dock, dueDates []time.Time, loc *time.Location) *timeutil.TimeRange {
	if len(dueDates) == 0 {
		return nil
	}

	ranges := make([]timeutil.TimeRange, 0, len(dueDates))

	for _, due := range dueDates {
		// Открытые границы при переполнении сдвига
		start := time.Time{}
		if shifted := due.AddDate(0, 0, -dock.EarlyScheduleThreshold); shifted.Year() >= 1 {
			start = timeutil.UTCMidnight(loc, shifted)
		}

		end := maxUTC
		if shifted := due.AddDate(0, 0, dock.LateScheduleThreshold+1); shifted.Year() <= 9000 {
			end = timeutil.UTCMidnight(loc, shifted).Add(-time.Second)
		}

		ranges = append(ranges, timeutil.TimeRange{Start: start, End: end})
	}

	return timeutil.IntersectAll(ranges)
}
