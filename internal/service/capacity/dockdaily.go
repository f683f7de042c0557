package capacity

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/occurrence"
)

// DockDailyCapacity строит дневной срез ёмкости дока из встреч дня и
// вхождений резерваций.
//
// Встреча относится к доку, если хотя бы одна её дверь принадлежит доку.
// Встреча считается "резервированной", когда она совпадает по времени начала
// и двери с каким-либо вхождением резервации; остальные идут в свободную
// квоту. Вхождение без совпавшей встречи удерживает свой резервированный
// объём как незапланированный (по нижней границе полосы вхождения).
func DockDailyCapacity(
	dock *domain.Dock,
	dayUTC time.Time,
	appointments []domain.Appointment,
	reservedSlots []occurrence.ReservationOccurrence,
	doorIndex map[int64]*domain.Door,
	quotas []domain.DockQuotaOverride,
) DockDaily {
	daily := DockDaily{
		DockID:   dock.ID,
		DockName: dock.Name,
		Date:     dayUTC,

		UnreservedApptsLimit:   dock.UnreservedApptsLimit,
		ReservedApptsLimit:     dock.ReservedApptsLimit,
		UnreservedCasesLimit:   dock.UnreservedCasesLimit,
		ReservedCasesLimit:     dock.ReservedCasesLimit,
		UnreservedPalletsLimit: dock.UnreservedPalletsLimit,
		ReservedPalletsLimit:   dock.ReservedPalletsLimit,
	}

	for i := range quotas {
		if quotas[i].DockID != dock.ID {
			continue
		}
		daily.UnreservedApptsLimit = quotas[i].UnreservedApptsLimit
		daily.ReservedApptsLimit = quotas[i].ReservedApptsLimit
		daily.UnreservedCasesLimit = quotas[i].UnreservedCasesLimit
		daily.ReservedCasesLimit = quotas[i].ReservedCasesLimit
		daily.UnreservedPalletsLimit = quotas[i].UnreservedPalletsLimit
		daily.ReservedPalletsLimit = quotas[i].ReservedPalletsLimit
		break
	}

	dockSlots := make([]occurrence.ReservationOccurrence, 0, len(reservedSlots))
	for i := range reservedSlots {
		if occurrenceOnDock(&reservedSlots[i], dock.ID, doorIndex) {
			dockSlots = append(dockSlots, reservedSlots[i])
		}
	}

	matched := make(map[int]bool, len(dockSlots))

	for i := range appointments {
		a := &appointments[i]
		if !appointmentOnDock(a, dock.ID, doorIndex) {
			continue
		}

		reserved := false
		for j := range dockSlots {
			if !matched[j] &&
				dockSlots[j].StartTime.Equal(a.EffectiveStart()) &&
				appointmentSharesDoor(a, &dockSlots[j]) {
				matched[j] = true
				reserved = true
				break
			}
		}

		pallets := 0
		if a.TotalPalletCount != nil {
			pallets = *a.TotalPalletCount
		}

		if reserved {
			daily.ReservedApptsScheduled++
			daily.ReservedCasesScheduled += a.TotalCaseCount
			daily.ReservedPalletsScheduled += float64(pallets)
		} else {
			daily.UnreservedApptsScheduled++
			daily.UnreservedCasesScheduled += a.TotalCaseCount
			daily.UnreservedPalletsScheduled += float64(pallets)
		}
	}

	for j := range dockSlots {
		if matched[j] {
			continue
		}
		daily.ReservedApptsUnscheduled++
		if dockSlots[j].MinCases != nil {
			daily.ReservedCasesUnscheduled += float64(*dockSlots[j].MinCases)
		}
		if dockSlots[j].MinPallets != nil {
			daily.ReservedPalletsUnscheduled += float64(*dockSlots[j].MinPallets)
		}
	}

	return daily
}

func occurrenceOnDock(o *occurrence.ReservationOccurrence, dockID int64, doorIndex map[int64]*domain.Door) bool {
	for _, doorID := range o.DoorIDs {
		if door, ok := doorIndex[doorID]; ok && door.DockID == dockID {
			return true
		}
	}
	return false
}

func appointmentOnDock(a *domain.Appointment, dockID int64, doorIndex map[int64]*domain.Door) bool {
	for _, doorID := range a.DoorIDs {
		if door, ok := doorIndex[doorID]; ok && door.DockID == dockID {
			return true
		}
	}
	return false
}

func appointmentSharesDoor(a *domain.Appointment, o *occurrence.ReservationOccurrence) bool {
	for _, doorID := range a.DoorIDs {
		if o.IncludesDoor(doorID) {
			return true
		}
	}
	return false
}
