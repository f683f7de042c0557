package capacity

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
)

// DockDaily дневной срез ёмкости дока: занято против лимитов по числу
// встреч, кейсам и паллетам, раздельно для резервированной и свободной квот.
// Строится один раз на пару (док, день) чистой функцией над снапшотом.
type DockDaily struct {
	DockID   int64
	DockName string
	Date     time.Time // UTC midnight of the business day

	UnreservedApptsLimit *int
	ReservedApptsLimit   *int

	UnreservedApptsScheduled int
	ReservedApptsScheduled   int
	ReservedApptsUnscheduled int

	UnreservedCasesLimit *int
	ReservedCasesLimit   *int

	UnreservedCasesScheduled float64
	ReservedCasesScheduled   float64
	ReservedCasesUnscheduled float64

	UnreservedPalletsLimit *int
	ReservedPalletsLimit   *int

	UnreservedPalletsScheduled float64
	ReservedPalletsScheduled   float64
	ReservedPalletsUnscheduled float64

	// Projected marginal change of the pending booking; a reschedule on the
	// same dock credits back the existing appointment's contribution
	ApptChange   int
	CaseChange   float64
	PalletChange float64

	Messages []domain.Message
}

// HasCapacity проверяет, что прогнозируемое изменение не уводит ни одну из
// трёх отслеживаемых величин в минус относительно её лимита. Нарушение любой
// одной величины убирает док из рассмотрения на этот день.
func (d *DockDaily) HasCapacity() bool {
	if d.UnreservedApptsLimit != nil &&
		float64(*d.UnreservedApptsLimit)+float64(intOrZero(d.ReservedApptsLimit))-
			float64(d.UnreservedApptsScheduled)-float64(d.ReservedApptsScheduled)-
			float64(d.ReservedApptsUnscheduled)-float64(d.ApptChange) < 0 {
		return false
	}

	if d.UnreservedCasesLimit != nil &&
		float64(*d.UnreservedCasesLimit)+float64(intOrZero(d.ReservedCasesLimit))-
			d.UnreservedCasesScheduled-d.ReservedCasesScheduled-
			d.ReservedCasesUnscheduled-d.CaseChange < 0 {
		return false
	}

	if d.UnreservedPalletsLimit != nil &&
		float64(*d.UnreservedPalletsLimit)+float64(intOrZero(d.ReservedPalletsLimit))-
			d.UnreservedPalletsScheduled-d.ReservedPalletsScheduled-
			d.ReservedPalletsUnscheduled-d.PalletChange < 0 {
		return false
	}

	return true
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
