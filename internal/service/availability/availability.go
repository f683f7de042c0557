package availability

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/occurrence"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// HasReservationConflict проверяет, что окно кандидата пересекает вхождение
// резервации, привязанное к двери. Свободный подбор не должен отдавать
// время, удерживаемое резервациями.
func HasReservationConflict(occurrences []occurrence.ReservationOccurrence, doorID int64, start, end time.Time) bool {
	for i := range occurrences {
		if !occurrences[i].IncludesDoor(doorID) {
			continue
		}
		oStart, oEnd := occurrences[i].Window()
		if timeutil.Overlaps(start, end, oStart, oEnd) {
			return true
		}
	}
	return false
}

// HasAppointmentConflict проверяет, что дверь занята другой встречей в окне
// кандидата. Окно встречи считается от gate-in, если трейлер уже на дверях.
// excludeID исключает переносимую встречу из рассмотрения (ноль ничего не
// исключает).
func HasAppointmentConflict(appointments []domain.Appointment, doorID int64, start, end time.Time, excludeID int64) bool {
	for i := range appointments {
		a := &appointments[i]
		if a.ID == excludeID || !a.Status.BlocksSlot() || !a.OccupiesDoor(doorID) {
			continue
		}
		w := a.EffectiveWindow()
		if timeutil.Overlaps(start, end, w.Start, w.End) {
			return true
		}
	}
	return false
}

// HasClosureConflict проверяет, что окно кандидата попадает в закрытие,
// покрывающее дверь, её док или площадку целиком
func HasClosureConflict(closures []occurrence.ClosureWindow, doorID, dockID int64, start, end time.Time) bool {
	for i := range closures {
		if !closures[i].AppliesToDoor(doorID, dockID) {
			continue
		}
		if timeutil.Overlaps(start, end, closures[i].Start, closures[i].End) {
			return true
		}
	}
	return false
}

// CutoffDecision результат проверки cutoff-времени дока
type CutoffDecision int

const (
	// CutoffNone ограничение не действует
	CutoffNone CutoffDecision = iota
	// CutoffFlag слоты остаются, но помечаются рекомендательным сообщением
	CutoffFlag
	// CutoffHide слоты дока на этот день скрываются
	CutoffHide
)

// EvaluateCutoff проверяет cutoff-время дока для кандидатного дня.
//
// Ограничение срабатывает, когда док объявляет cutoff, текущий момент уже
// позже cutoff сегодняшнего локального дня, кандидатный день приходится на
// сегодня или завтра, и хотя бы один поставщик заказа запрещает бронирование
// день-в-день. Перевозчикам такие слоты скрываются, остальным отдаются с
// пометкой.
func EvaluateCutoff(
	dock *domain.Dock,
	loc *time.Location,
	nowUTC time.Time,
	dayUTC time.Time,
	isCarrierCaller bool,
	sameDayDisallowed bool,
) CutoffDecision {
	if !dock.HasScheduleCutoff() || !sameDayDisallowed {
		return CutoffNone
	}

	clock, err := dock.ScheduleCutoffTime.Duration()
	if err != nil {
		return CutoffNone
	}

	today := timeutil.LocalMidnight(loc, nowUTC)
	cutoffAt := timeutil.LocalClockUTC(loc, today, clock)
	if nowUTC.Before(cutoffAt) {
		return CutoffNone
	}

	tomorrow := timeutil.AddLocalDays(loc, today, 1)
	if !dayUTC.Equal(today) && !dayUTC.Equal(tomorrow) {
		return CutoffNone
	}

	if isCarrierCaller {
		return CutoffHide
	}
	return CutoffFlag
}
