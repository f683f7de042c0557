package slotsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

func TestGenerateSlotTimes_DefaultInterval(t *testing.T) {
	site := &domain.Site{BusinessDayOffset: 0}
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlotTimes(site, time.UTC, day, 60, 0)

	// Шаг 15 минут, часовая встреча должна закончиться до следующей полуночи:
	// 00:00 .. 23:00 включительно
	require.Len(t, slots, 93)
	assert.Equal(t, day, slots[0])
	assert.Equal(t, day.Add(23*time.Hour), slots[len(slots)-1])
}

func TestGenerateSlotTimes_HourInterval(t *testing.T) {
	site := &domain.Site{BusinessDayOffset: 0}
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlotTimes(site, time.UTC, day, 120, 60)

	// 00:00 .. 22:00 с шагом в час
	require.Len(t, slots, 23)
	assert.Equal(t, day.Add(22*time.Hour), slots[len(slots)-1])
}

func TestGenerateSlotTimes_BusinessDayOffset(t *testing.T) {
	site := &domain.Site{BusinessDayOffset: 6}
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlotTimes(site, time.UTC, day, 60, 60)

	// Бизнес-день 06:00 .. 06:00 следующего дня
	require.NotEmpty(t, slots)
	assert.Equal(t, day.Add(6*time.Hour), slots[0])
	assert.Equal(t, day.Add(29*time.Hour), slots[len(slots)-1])
}

func TestGenerateSlotTimes_DurationClamped(t *testing.T) {
	site := &domain.Site{BusinessDayOffset: 0}
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// Длительность больше суток усечётся до суток: единственный слот в полночь
	slots := GenerateSlotTimes(site, time.UTC, day, 2000, 15)
	require.Len(t, slots, 1)
	assert.Equal(t, day, slots[0])
}

func TestComputeSlotHash(t *testing.T) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	h1 := ComputeSlotHash(start, []int64{3, 7})
	h2 := ComputeSlotHash(start, []int64{3, 7})
	h3 := ComputeSlotHash(start, []int64{7, 3})
	h4 := ComputeSlotHash(start.Add(time.Minute), []int64{3, 7})

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h1, h4)
}
