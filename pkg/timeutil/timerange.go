package timeutil

import "time"

// TimeRange закрытый временной интервал [Start, End]
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange создает интервал; если границы перепутаны, они меняются местами
func NewTimeRange(start, end time.Time) TimeRange {
	if end.Before(start) {
		start, end = end, start
	}
	return TimeRange{Start: start, End: end}
}

// Overlaps проверяет реальное пересечение двух окон в полуоткрытой семантике:
// окна, которые только граничат (конец одного равен началу другого),
// пересечением не считаются.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Overlaps полуоткрытое пересечение с другим интервалом
func (r TimeRange) Overlaps(other TimeRange) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

// Contains проверяет, что момент t лежит внутри закрытого интервала
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Intersect возвращает общую часть двух закрытых интервалов.
// Второе значение false, когда общих точек нет.
func (r TimeRange) Intersect(other TimeRange) (TimeRange, bool) {
	start := r.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := r.End
	if other.End.Before(end) {
		end = other.End
	}
	if start.After(end) {
		return TimeRange{}, false
	}
	return TimeRange{Start: start, End: end}, true
}

// IntersectAll вычисляет пересечение произвольного числа закрытых интервалов.
// Возвращает nil, если интервалы не имеют общей точки или список пуст.
// Один интервал возвращается как есть.
func IntersectAll(ranges []TimeRange) *TimeRange {
	if len(ranges) == 0 {
		return nil
	}

	result := ranges[0]
	for _, r := range ranges[1:] {
		intersected, ok := result.Intersect(r)
		if !ok {
			return nil
		}
		result = intersected
	}
	return &result
}
