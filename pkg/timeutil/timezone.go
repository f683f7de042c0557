package timeutil

import "time"

// UTCMidnight возвращает UTC-момент локальной полуночи той календарной даты,
// на которую приходится t (по UTC). Используется для нормализации дат
// поставки к началу локального дня площадки.
func UTCMidnight(loc *time.Location, t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc).UTC()
}

// LocalMidnight возвращает UTC-момент локальной полуночи того локального дня,
// на который приходится момент t. В отличие от UTCMidnight дата берётся по
// зоне площадки, поэтому функция применима к произвольным моментам
// (текущее время, начало встречи), а не только к датам, закодированным
// UTC-полуночью.
func LocalMidnight(loc *time.Location, t time.Time) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc).UTC()
}

// LocalClockUTC проецирует локальное время на стене (смещение от полуночи)
// на календарный день dayUTC и возвращает результат в UTC.
//
// dayUTC должен быть UTC-моментом локальной полуночи нужного дня (см.
// UTCMidnight). Смещение применяется через правила зоны, а не наивным
// добавлением часов, поэтому переходы через летнее время дают корректный
// UTC-момент. Отрицательные смещения допустимы (бизнес-день начинается
// накануне календарного).
func LocalClockUTC(loc *time.Location, dayUTC time.Time, clock time.Duration) time.Time {
	local := dayUTC.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, int(clock/time.Minute), 0, 0, loc).UTC()
}

// DayShift возвращает направление сдвига смежного календарного дня для
// знакового смещения бизнес-дня: +1 для положительного смещения, -1 для
// отрицательного, 0 если смещения нет.
func DayShift(businessDayOffsetHours int) int {
	switch {
	case businessDayOffsetHours > 0:
		return 1
	case businessDayOffsetHours < 0:
		return -1
	default:
		return 0
	}
}

// AddLocalDays сдвигает dayUTC на n локальных календарных дней и возвращает
// UTC-момент локальной полуночи результата. Сдвиг выполняется по локальной
// дате, а не добавлением 24h, поэтому дни перехода на летнее время
// (23 и 25 часов) обрабатываются корректно.
func AddLocalDays(loc *time.Location, dayUTC time.Time, n int) time.Time {
	local := dayUTC.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+n, 0, 0, 0, 0, loc).UTC()
}

// SameLocalDate проверяет, что два UTC-момента приходятся на одну
// календарную дату в указанной зоне
func SameLocalDate(loc *time.Location, a, b time.Time) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
