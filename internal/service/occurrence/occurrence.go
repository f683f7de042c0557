package occurrence

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// ReservationsForDay разворачивает шаблоны резерваций в конкретные вхождения
// бизнес-дня dayUTC (UTC-момент локальной полуночи целевой даты).
//
// Принадлежность вхождения бизнес-дню определяется локальным часом начала
// шаблона относительно смещения бизнес-дня: при положительном смещении часы
// до смещения принадлежат следующему календарному дню, при отрицательном
// смещении часы после 24+offset принадлежат предыдущему. Поэтому кроме
// целевой даты проверяется смежный сдвинутый день.
func ReservationsForDay(reservations []domain.Reservation, loc *time.Location, dayUTC time.Time, businessDayOffset int) []ReservationOccurrence {
	localDay := dayUTC.In(loc)

	var occurrences []ReservationOccurrence

	for i := range reservations {
		r := &reservations[i]
		if !r.EffectiveOn(dayUTC) ||
			!r.Days.Contains(localDay.Weekday()) ||
			r.HasException(localDay) {
			continue
		}

		hour, err := r.StartTime.Hour()
		if err != nil {
			continue
		}
		if businessDayOffset >= 0 && hour < businessDayOffset {
			continue
		}
		if businessDayOffset < 0 && hour >= 24+businessDayOffset {
			continue
		}

		occurrences = append(occurrences, materialize(r, loc, dayUTC))
	}

	dayShift := timeutil.DayShift(businessDayOffset)
	if dayShift == 0 {
		return occurrences
	}

	shiftedDayUTC := timeutil.AddLocalDays(loc, dayUTC, dayShift)
	shiftedLocal := shiftedDayUTC.In(loc)

	for i := range reservations {
		r := &reservations[i]
		if !r.EffectiveOn(shiftedDayUTC) ||
			!r.Days.Contains(shiftedLocal.Weekday()) ||
			r.HasException(shiftedLocal) {
			continue
		}

		hour, err := r.StartTime.Hour()
		if err != nil {
			continue
		}
		if dayShift == 1 && hour >= businessDayOffset {
			continue
		}
		if dayShift == -1 && hour < 24+businessDayOffset {
			continue
		}

		occurrences = append(occurrences, materialize(r, loc, shiftedDayUTC))
	}

	return occurrences
}

func materialize(r *domain.Reservation, loc *time.Location, dayUTC time.Time) ReservationOccurrence {
	clock, _ := r.StartTime.Duration()

	return ReservationOccurrence{
		ReservationID:   r.ID,
		DoorIDs:         r.DoorIDs,
		StartTime:       timeutil.LocalClockUTC(loc, dayUTC, clock),
		DurationMinutes: r.DurationMinutes,
		MinPallets:      r.MinPallets,
		MaxPallets:      r.MaxPallets,
		MinCases:        r.MinCases,
		MaxCases:        r.MaxCases,
		CarrierIDs:      r.CarrierIDs,
		VendorIDs:       r.VendorIDs,
	}
}

// ClosuresForDay разворачивает активные закрытия в конкретные окна дня dayUTC.
// isReceivingDay отличает закрытия текущего приёмного дня от закрытий будущих
// дней. Окна, переходящие через полночь (конец численно раньше начала),
// продлеваются на следующий день; окна нулевой длины отбрасываются.
func ClosuresForDay(schedules []domain.Schedule, loc *time.Location, dayUTC time.Time, businessDayOffset int, isReceivingDay bool) []ClosureWindow {
	localDay := dayUTC.In(loc)

	var windows []ClosureWindow

	for i := range schedules {
		s := &schedules[i]
		if !s.EffectiveOn(dayUTC) ||
			!s.Days.Contains(localDay.Weekday()) ||
			s.IsReceivingDay != isReceivingDay {
			continue
		}
		if w, ok := closureWindow(s, loc, dayUTC); ok {
			windows = append(windows, w)
		}
	}

	dayShift := timeutil.DayShift(businessDayOffset)
	if dayShift != 0 {
		shiftedDayUTC := timeutil.AddLocalDays(loc, dayUTC, dayShift)
		shiftedLocal := shiftedDayUTC.In(loc)

		for i := range schedules {
			s := &schedules[i]
			if !s.EffectiveOn(shiftedDayUTC) ||
				!s.Days.Contains(shiftedLocal.Weekday()) ||
				s.IsReceivingDay != isReceivingDay {
				continue
			}
			if w, ok := closureWindow(s, loc, shiftedDayUTC); ok {
				windows = append(windows, w)
			}
		}
	}

	return windows
}

func closureWindow(s *domain.Schedule, loc *time.Location, dayUTC time.Time) (ClosureWindow, bool) {
	startClock, errStart := s.StartTime.Duration()
	endClock, errEnd := s.EndTime.Duration()
	if errStart != nil || errEnd != nil {
		return ClosureWindow{}, false
	}

	start := timeutil.LocalClockUTC(loc, dayUTC, startClock)
	end := timeutil.LocalClockUTC(loc, dayUTC, endClock)

	if end.Equal(start) {
		return ClosureWindow{}, false
	}
	// Окно через полночь заканчивается на следующий день
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	return ClosureWindow{
		ScheduleID:   s.ID,
		Availability: s.Availability,
		DockIDs:      s.DockIDs,
		DoorIDs:      s.DoorIDs,
		Start:        start,
		End:          end,
	}, true
}
