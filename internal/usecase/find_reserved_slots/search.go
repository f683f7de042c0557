package find_reserved_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/capacity"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/occurrence"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/slotsearch"
	"github.com/m04kA/SMC-DockSchedulingService/internal/usecase/resolve_door_group"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// searchContext неизменяемый снапшот одного вычисления подбора
type searchContext struct {
	req  *Request
	site *domain.Site
	loc  *time.Location

	docks     []domain.Dock
	dockIndex map[int64]*domain.Dock
	doorIndex map[int64]*domain.Door

	appointments []domain.Appointment
	reservations []domain.Reservation
	schedules    []domain.Schedule
	equipment    []domain.Equipment

	orderVendors   []domain.Vendor
	allVendors     []domain.Vendor
	orderVendorIDs []int64

	totalCases        float64
	totalPallets      float64
	sameDayDisallowed bool

	earliest time.Time
	latest   time.Time
}

// buildSearchContext собирает контекст поиска. false: горизонт пуст.
func (uc *Usecase) buildSearchContext(
	req *Request,
	siteInfo *domain.Site,
	loc *time.Location,
	dgResp *resolve_door_group.Response,
	orderVendors, allVendors []domain.Vendor,
) (*searchContext, bool) {
	sc := &searchContext{
		req:            req,
		site:           siteInfo,
		loc:            loc,
		docks:          dgResp.Data.Docks,
		dockIndex:      make(map[int64]*domain.Dock),
		doorIndex:      make(map[int64]*domain.Door),
		orderVendors:   orderVendors,
		allVendors:     allVendors,
		orderVendorIDs: domain.CollectVendorIDs(req.Orders),
		totalCases:     float64(domain.OrderTotalCases(req.Orders)),
		totalPallets:   float64(domain.OrderTotalPallets(req.PalletOverride, req.Orders)),
	}

	for i := range sc.docks {
		sc.dockIndex[sc.docks[i].ID] = &sc.docks[i]
	}
	for dockID := range dgResp.Data.DoorsByDock {
		doors := dgResp.Data.DoorsByDock[dockID]
		for i := range doors {
			sc.doorIndex[doors[i].ID] = &doors[i]
		}
	}

	for i := range orderVendors {
		if !orderVendors[i].AllowSameDayAppointment {
			sc.sameDayDisallowed = true
			break
		}
	}

	var earliest, latest time.Time
	for _, item := range dgResp.Data.DockList {
		if item.Range == nil {
			continue
		}
		if earliest.IsZero() || item.Range.Start.Before(earliest) {
			earliest = item.Range.Start
		}
		if latest.IsZero() || item.Range.End.After(latest) {
			latest = item.Range.End
		}
	}
	if earliest.IsZero() {
		return nil, false
	}

	today := timeutil.LocalMidnight(loc, req.CurrentUTCTime)
	if earliest.Before(today) {
		earliest = today
	}
	latestDay := timeutil.LocalMidnight(loc, latest)
	if siteInfo.AppointmentDateLimitDays != nil {
		horizon := timeutil.AddLocalDays(loc, today, *siteInfo.AppointmentDateLimitDays)
		if horizon.Before(latestDay) {
			latestDay = horizon
		}
	}
	if latestDay.Before(earliest) {
		return nil, false
	}

	sc.earliest = earliest
	sc.latest = latestDay
	return sc, true
}

// evaluateDay фильтрует вхождения резерваций одного бизнес-дня
func (uc *Usecase) evaluateDay(sc *searchContext, dayUTC time.Time, resp *Response) {
	offset := sc.site.BusinessDayOffset
	now := sc.req.CurrentUTCTime

	dayAppointments := appointmentsForBusinessDay(sc, dayUTC)
	resp.Data.VendorWarnings = append(resp.Data.VendorWarnings,
		capacity.CheckVendorLoadCounts(sc.orderVendors, dayAppointments)...)

	occurrences := occurrence.ReservationsForDay(sc.reservations, sc.loc, dayUTC, offset)
	isToday := timeutil.SameLocalDate(sc.loc, dayUTC, now)
	closures := occurrence.ClosuresForDay(sc.schedules, sc.loc, dayUTC, offset, isToday)

	for i := range occurrences {
		occ := &occurrences[i]

		if !occ.StartTime.After(now) {
			continue
		}
		if occ.DurationMinutes < sc.req.DurationMinutes {
			continue
		}
		if !occurrenceBandContains(occ, sc.site.UnitType, sc.totalCases, sc.totalPallets) {
			continue
		}
		if !allowsCarrier(occ, sc.req.CarrierID) || !allowsAnyVendor(occ, sc.orderVendorIDs) {
			continue
		}

		slot, ok := uc.evaluateOccurrence(sc, occ, closures, resp)
		if ok {
			resp.Data.Slots = append(resp.Data.Slots, slot)
		}
	}
}

// evaluateOccurrence проверяет доступность каждой двери вхождения: отказ
// любой двери отбрасывает вхождение целиком
func (uc *Usecase) evaluateOccurrence(
	sc *searchContext,
	occ *occurrence.ReservationOccurrence,
	closures []occurrence.ClosureWindow,
	resp *Response,
) (Slot, bool) {
	start, end := occ.Window()
	var dockID int64

	for _, doorID := range occ.DoorIDs {
		door, ok := sc.doorIndex[doorID]
		if !ok || !door.Active {
			return Slot{}, false
		}
		if dockID == 0 {
			dockID = door.DockID
		}

		if availability.HasAppointmentConflict(sc.appointments, doorID, start, end, sc.req.ExcludeAppointmentID) {
			return Slot{}, false
		}
		if availability.HasClosureConflict(closures, doorID, door.DockID, start, end) {
			return Slot{}, false
		}
		if !capacity.IsEquipmentAvailableForSlot(start, occ.DurationMinutes, sc.appointments, sc.orderVendors, sc.allVendors, sc.equipment, sc.doorIndex) {
			return Slot{}, false
		}

		dock, ok := sc.dockIndex[door.DockID]
		if !ok {
			return Slot{}, false
		}
		dayUTC := timeutil.LocalMidnight(sc.loc, start)
		cutoff := availability.EvaluateCutoff(dock, sc.loc, sc.req.CurrentUTCTime, dayUTC, sc.req.IsCarrierCaller, sc.sameDayDisallowed)
		if cutoff != availability.CutoffNone {
			resp.Messages = appendUniqueMessage(resp.Messages, domain.NewMessage(domain.CodeDockCutoff,
				fmt.Sprintf("dock %s is past its booking cutoff for this date", dock.Name)))
			if cutoff == availability.CutoffHide {
				return Slot{}, false
			}
		}
	}

	return Slot{
		Hash:          slotsearch.ComputeSlotHash(start, occ.DoorIDs),
		ReservationID: occ.ReservationID,
		StartTime:     start,
		EndTime:       end,
		DoorIDs:       occ.DoorIDs,
		DockID:        dockID,
		BandLabel:     occurrenceBandLabel(occ, sc.site.UnitType),
		CarrierBound:  len(occ.CarrierIDs) > 0,
		VendorBound:   len(occ.VendorIDs) > 0,
	}, true
}

// occurrenceBandContains проверяет, что объём заказов попадает в полосу
// вхождения в единицах площадки; отсутствующая граница не ограничивает
func occurrenceBandContains(occ *occurrence.ReservationOccurrence, unitType domain.UnitType, totalCases, totalPallets float64) bool {
	if unitType == domain.UnitTypePallets {
		if occ.MinPallets != nil && totalPallets < float64(*occ.MinPallets) {
			return false
		}
		if occ.MaxPallets != nil && totalPallets > float64(*occ.MaxPallets) {
			return false
		}
		return true
	}
	if occ.MinCases != nil && totalCases < float64(*occ.MinCases) {
		return false
	}
	if occ.MaxCases != nil && totalCases > float64(*occ.MaxCases) {
		return false
	}
	return true
}

func occurrenceBandLabel(occ *occurrence.ReservationOccurrence, unitType domain.UnitType) string {
	min, max := occ.MinCases, occ.MaxCases
	if unitType == domain.UnitTypePallets {
		min, max = occ.MinPallets, occ.MaxPallets
	}
	label := func(p *int) string {
		if p == nil {
			return "*"
		}
		return fmt.Sprintf("%d", *p)
	}
	return label(min) + "-" + label(max)
}

func allowsCarrier(occ *occurrence.ReservationOccurrence, carrierID int64) bool {
	if len(occ.CarrierIDs) == 0 {
		return true
	}
	for _, id := range occ.CarrierIDs {
		if id == carrierID {
			return true
		}
	}
	return false
}

func allowsAnyVendor(occ *occurrence.ReservationOccurrence, vendorIDs []int64) bool {
	if len(occ.VendorIDs) == 0 {
		return true
	}
	for _, id := range occ.VendorIDs {
		for _, v := range vendorIDs {
			if id == v {
				return true
			}
		}
	}
	return false
}

// appointmentsForBusinessDay встречи, чьё фактическое начало попадает в
// бизнес-день dayUTC площадки
func appointmentsForBusinessDay(sc *searchContext, dayUTC time.Time) []domain.Appointment {
	offset := time.Duration(sc.site.BusinessDayOffset) * time.Hour
	from := timeutil.LocalClockUTC(sc.loc, dayUTC, offset)
	to := timeutil.LocalClockUTC(sc.loc, timeutil.AddLocalDays(sc.loc, dayUTC, 1), offset)

	var result []domain.Appointment
	for i := range sc.appointments {
		start := sc.appointments[i].EffectiveStart()
		if !start.Before(from) && start.Before(to) {
			result = append(result, sc.appointments[i])
		}
	}
	return result
}

func appendUniqueMessage(messages []domain.Message, msg domain.Message) []domain.Message {
	for i := range messages {
		if messages[i] == msg {
			return messages
		}
	}
	return append(messages, msg)
}
