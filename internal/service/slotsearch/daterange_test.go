package slotsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

func TestValidDateRangeForDock_SingleDueDate(t *testing.T) {
	dock := &domain.Dock{EarlyScheduleThreshold: 5, LateScheduleThreshold: 3}
	due := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	r := ValidDateRangeForDock(dock, []time.Time{due}, time.UTC)
	require.NotNil(t, r)

	assert.Equal(t, time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC), r.Start)
	// Конец: последняя секунда последнего допустимого дня (due + 3)
	assert.Equal(t, time.Date(2026, 6, 13, 23, 59, 59, 0, time.UTC), r.End)
}

func TestValidDateRangeForDock_TwoDueDatesNarrow(t *testing.T) {
	dock := &domain.Dock{EarlyScheduleThreshold: 5, LateScheduleThreshold: 5}
	dues := []time.Time{
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	}

	r := ValidDateRangeForDock(dock, dues, time.UTC)
	require.NotNil(t, r)

	// Общая часть окон двух заказов: единственный день 15 июня
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 6, 15, 23, 59, 59, 0, time.UTC), r.End)
}

func TestValidDateRangeForDock_IncompatibleDueDates(t *testing.T) {
	dock := &domain.Dock{EarlyScheduleThreshold: 5, LateScheduleThreshold: 5}
	dues := []time.Time{
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	assert.Nil(t, ValidDateRangeForDock(dock, dues, time.UTC))
}

func TestValidDateRangeForDock_NoDueDates(t *testing.T) {
	dock := &domain.Dock{}
	assert.Nil(t, ValidDateRangeForDock(dock, nil, time.UTC))
}
