package slotsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcDay(d int) time.Time {
	return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
}

func collectDays(w *DateWalker, limit int) []time.Time {
	days := []time.Time{w.Current()}
	for len(days) < limit && w.Advance() {
		days = append(days, w.Current())
	}
	return days
}

func TestDateWalker_Oscillation(t *testing.T) {
	// Границы не мешают: полная последовательность -1, +1, -2, +2
	w := NewDateWalker(time.UTC, utcDay(15), utcDay(1), utcDay(30))

	days := collectDays(w, 5)
	require.Len(t, days, 5)
	assert.Equal(t, utcDay(15), days[0])
	assert.Equal(t, utcDay(14), days[1])
	assert.Equal(t, utcDay(16), days[2])
	assert.Equal(t, utcDay(13), days[3])
	assert.Equal(t, utcDay(17), days[4])
}

func TestDateWalker_SkipsOutOfRangeDates(t *testing.T) {
	// Стартовая дата у нижней границы: пробы ниже границы перешагиваются
	w := NewDateWalker(time.UTC, utcDay(10), utcDay(9), utcDay(13))

	days := collectDays(w, 10)
	assert.Equal(t, []time.Time{utcDay(10), utcDay(9), utcDay(11), utcDay(12), utcDay(13)}, days)
	assert.False(t, w.Advance(), "walk ends once both sides leave the range")
}

func TestDateWalker_ReachesDistantRange(t *testing.T) {
	// Диапазон далеко от стартовой даты: осцилляция должна до него дойти
	w := NewDateWalker(time.UTC, utcDay(10), utcDay(15), utcDay(16))

	require.True(t, w.Advance())
	assert.Equal(t, utcDay(15), w.Current())

	require.True(t, w.Advance())
	assert.Equal(t, utcDay(16), w.Current())

	assert.False(t, w.Advance())
}

func TestDateWalker_NonUTCTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tokyoDay := func(d int) time.Time {
		return time.Date(2026, 6, d, 0, 0, 0, 0, loc).UTC()
	}

	// Локальная полночь Токио лежит в предыдущих UTC-сутках; шаги обхода
	// должны оставаться на локальных полуночах и давать ту же
	// последовательность -1, +1, -2, +2, что и в UTC
	w := NewDateWalker(loc, tokyoDay(15), tokyoDay(1), tokyoDay(30))

	days := collectDays(w, 5)
	require.Len(t, days, 5)
	assert.Equal(t, []time.Time{tokyoDay(15), tokyoDay(14), tokyoDay(16), tokyoDay(13), tokyoDay(17)}, days)
}

func TestDateWalker_RangeBehindStart(t *testing.T) {
	// Диапазон позади стартовой даты: низкая сторона осцилляции спускается
	// по одному дню за шаг и доходит до него
	w := NewDateWalker(time.UTC, utcDay(20), utcDay(1), utcDay(2))

	require.True(t, w.Advance())
	assert.Equal(t, utcDay(2), w.Current())

	require.True(t, w.Advance())
	assert.Equal(t, utcDay(1), w.Current())

	assert.False(t, w.Advance())
}
