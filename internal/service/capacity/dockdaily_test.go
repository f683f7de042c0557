package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/occurrence"
)

func intPtr(v int) *int { return &v }

var capDay = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func capDoorIndex() map[int64]*domain.Door {
	return map[int64]*domain.Door{
		10: {ID: 10, DockID: 1},
		11: {ID: 11, DockID: 1},
		20: {ID: 20, DockID: 2},
	}
}

func TestDockDailyCapacity_SplitsReservedAndUnreserved(t *testing.T) {
	dock := &domain.Dock{ID: 1, Name: "Dock A"}
	pallets := 4

	appointments := []domain.Appointment{
		// Совпадает с вхождением по времени и двери, резервированная
		{
			ID: 100, DoorIDs: []int64{10}, Status: domain.StatusScheduled,
			StartTime: capDay.Add(8 * time.Hour), ScheduledDuration: 60,
			TotalCaseCount: 50, TotalPalletCount: &pallets,
		},
		// Не совпадает со вхождениями, свободная
		{
			ID: 101, DoorIDs: []int64{11}, Status: domain.StatusScheduled,
			StartTime: capDay.Add(10 * time.Hour), ScheduledDuration: 60,
			TotalCaseCount: 30,
		},
		// Чужой док игнорируется
		{
			ID: 102, DoorIDs: []int64{20}, Status: domain.StatusScheduled,
			StartTime: capDay.Add(8 * time.Hour), ScheduledDuration: 60,
			TotalCaseCount: 500,
		},
	}

	occurrences := []occurrence.ReservationOccurrence{
		{ReservationID: 1, DoorIDs: []int64{10}, StartTime: capDay.Add(8 * time.Hour), DurationMinutes: 60},
		// Без совпавшей встречи удерживает объём как незапланированный
		{ReservationID: 2, DoorIDs: []int64{11}, StartTime: capDay.Add(14 * time.Hour), DurationMinutes: 60,
			MinCases: intPtr(25), MinPallets: intPtr(2)},
	}

	daily := DockDailyCapacity(dock, capDay, appointments, occurrences, capDoorIndex(), nil)

	assert.Equal(t, 1, daily.ReservedApptsScheduled)
	assert.Equal(t, 50.0, daily.ReservedCasesScheduled)
	assert.Equal(t, 4.0, daily.ReservedPalletsScheduled)

	assert.Equal(t, 1, daily.UnreservedApptsScheduled)
	assert.Equal(t, 30.0, daily.UnreservedCasesScheduled)

	assert.Equal(t, 1, daily.ReservedApptsUnscheduled)
	assert.Equal(t, 25.0, daily.ReservedCasesUnscheduled)
	assert.Equal(t, 2.0, daily.ReservedPalletsUnscheduled)
}

func TestDockDailyCapacity_QuotaOverrideReplacesLimits(t *testing.T) {
	dock := &domain.Dock{ID: 1, UnreservedApptsLimit: intPtr(5), ReservedApptsLimit: intPtr(5)}

	quotas := []domain.DockQuotaOverride{
		{DockID: 2, UnreservedApptsLimit: intPtr(9)}, // чужой док
		{DockID: 1, UnreservedApptsLimit: intPtr(1)},
	}

	daily := DockDailyCapacity(dock, capDay, nil, nil, capDoorIndex(), quotas)

	assert.Equal(t, 1, *daily.UnreservedApptsLimit)
	assert.Nil(t, daily.ReservedApptsLimit, "override replaces the whole limit set")
}

func TestDockDaily_HasCapacity(t *testing.T) {
	t.Run("no limits means unlimited", func(t *testing.T) {
		d := DockDaily{UnreservedApptsScheduled: 100, ApptChange: 1}
		assert.True(t, d.HasCapacity())
	})

	t.Run("appointment budget exhausted", func(t *testing.T) {
		d := DockDaily{
			UnreservedApptsLimit:     intPtr(2),
			ReservedApptsLimit:       intPtr(1),
			UnreservedApptsScheduled: 2,
			ReservedApptsScheduled:   1,
			ApptChange:               1,
		}
		assert.False(t, d.HasCapacity())
	})

	t.Run("unscheduled reservations consume the budget", func(t *testing.T) {
		d := DockDaily{
			UnreservedApptsLimit:     intPtr(2),
			UnreservedApptsScheduled: 1,
			ReservedApptsUnscheduled: 1,
			ApptChange:               1,
		}
		assert.False(t, d.HasCapacity())
	})

	t.Run("pending volume within case budget", func(t *testing.T) {
		d := DockDaily{
			UnreservedCasesLimit:     intPtr(100),
			UnreservedCasesScheduled: 60,
			CaseChange:               40,
		}
		assert.True(t, d.HasCapacity())

		d.CaseChange = 41
		assert.False(t, d.HasCapacity())
	})
}
