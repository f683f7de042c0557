package slotsearch

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// DateWalker обходит кандидатные даты осциллирующими шагами от стартовой:
// -1, +1, -2, +2, ... дней. Даты за пределами [earliest, latest]
// перешагиваются; обход заканчивается, когда обе стороны вышли за границы.
type DateWalker struct {
	loc       *time.Location
	earliest  time.Time
	latest    time.Time
	current   time.Time
	increment int
}

// NewDateWalker создает обходчик от стартовой даты в границах [earliest, latest]
func NewDateWalker(loc *time.Location, start, earliest, latest time.Time) *DateWalker {
	return &DateWalker{
		loc:       loc,
		earliest:  earliest,
		latest:    latest,
		current:   start,
		increment: 1,
	}
}

// Current текущая дата обхода
func (w *DateWalker) Current() time.Time {
	return w.current
}

func (w *DateWalker) step() {
	delta := w.increment
	if w.increment%2 != 0 {
		delta = -w.increment
	}
	w.current = timeutil.AddLocalDays(w.loc, w.current, delta)
	w.increment++
}

// Advance переходит к следующей кандидатной дате, перешагивая даты вне
// границ. Возвращает false, когда обе стороны осцилляции вышли за допустимые
// границы: дальнейшие пробы только удаляются от диапазона.
func (w *DateWalker) Advance() bool {
	lowOut, highOut := false, false
	for !(lowOut && highOut) {
		w.step()
		switch {
		case w.current.Before(w.earliest):
			lowOut = true
		case w.current.After(w.latest):
			highOut = true
		default:
			return true
		}
	}
	return false
}
