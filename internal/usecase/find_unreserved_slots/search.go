package find_unreserved_slots

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

	docks       []domain.Dock
	dockRanges  map[int64]*timeutil.TimeRange
	doorsByDock map[int64][]domain.Door
	doorIndex   map[int64]*domain.Door

	appointments []domain.Appointment
	reservations []domain.Reservation
	schedules    []domain.Schedule
	equipment    []domain.Equipment

	orderVendors []domain.Vendor
	allVendors   []domain.Vendor

	totalUnits        float64
	totalCases        float64
	totalPallets      float64
	sameDayDisallowed bool
	checkQuota        bool

	// earliest/latest границы обхода, UTC-полуночи локальных дат
	earliest time.Time
	latest   time.Time
}

// buildSearchContext собирает контекст поиска из результата разрешения группы
// дверей. false: ни один док не принимает набор заказов или горизонт пуст.
func (uc *Usecase) buildSearchContext(
	req *Request,
	siteInfo *domain.Site,
	loc *time.Location,
	dgResp *resolve_door_group.Response,
	orderVendors, allVendors []domain.Vendor,
) (*searchContext, bool) {
	sc := &searchContext{
		req:          req,
		site:         siteInfo,
		loc:          loc,
		docks:        dgResp.Data.Docks,
		dockRanges:   make(map[int64]*timeutil.TimeRange),
		doorsByDock:  dgResp.Data.DoorsByDock,
		doorIndex:    make(map[int64]*domain.Door),
		orderVendors: orderVendors,
		allVendors:   allVendors,
		checkQuota:   siteInfo.DockThresholdFeature || len(req.QuotaOverrides) > 0,
	}

	for dockID := range sc.doorsByDock {
		doors := sc.doorsByDock[dockID]
		for i := range doors {
			sc.doorIndex[doors[i].ID] = &doors[i]
		}
	}

	sc.totalUnits = domain.OrderTotalUnits(siteInfo.UnitType, req.PalletOverride, req.Orders)
	sc.totalCases = float64(domain.OrderTotalCases(req.Orders))
	sc.totalPallets = float64(domain.OrderTotalPallets(req.PalletOverride, req.Orders))

	for i := range orderVendors {
		if !orderVendors[i].AllowSameDayAppointment {
			sc.sameDayDisallowed = true
			break
		}
	}

	// Горизонт поиска: объединение диапазонов доков, не раньше текущего дня,
	// не дальше лимита площадки
	var earliest, latest time.Time
	for _, item := range dgResp.Data.DockList {
		if item.Range == nil {
			continue
		}
		sc.dockRanges[item.DockID] = item.Range
		if earliest.IsZero() || item.Range.Start.Before(earliest) {
			earliest = item.Range.Start
		}
		if latest.IsZero() || item.Range.End.After(latest) {
			latest = item.Range.End
		}
	}
	today := timeutil.LocalMidnight(loc, req.CurrentUTCTime)

	// Автоназначение ищет в фиксированном окне от текущего дня и не
	// ограничено диапазонами дат доков
	if req.ForAutoAppoint {
		sc.earliest = today
		sc.latest = timeutil.AddLocalDays(loc, today, domain.AutoAppointWindowDays)
		return sc, true
	}

	if len(sc.dockRanges) == 0 {
		return nil, false
	}

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

// evaluateDay перебирает кандидатные слоты одного бизнес-дня по всем докам
// группы и добавляет прошедшие фильтры в resp
func (uc *Usecase) evaluateDay(sc *searchContext, dayUTC time.Time, resp *Response) {
	offset := sc.site.BusinessDayOffset
	now := sc.req.CurrentUTCTime

	// Поставщик, запрещающий бронирование день-в-день, закрывает текущий
	// локальный день целиком
	if sc.sameDayDisallowed && timeutil.SameLocalDate(sc.loc, dayUTC, now) {
		return
	}

	dayAppointments := appointmentsForBusinessDay(sc, dayUTC)

	// Превышение дневного лимита загрузок поставщика закрывает весь день;
	// автоназначение лимиты поставщиков не учитывает
	if !sc.req.ForAutoAppoint {
		if warnings := capacity.CheckVendorLoadCounts(sc.orderVendors, dayAppointments); len(warnings) > 0 {
			resp.Data.VendorWarnings = append(resp.Data.VendorWarnings, warnings...)
			return
		}
	}

	occurrences := occurrence.ReservationsForDay(sc.reservations, sc.loc, dayUTC, offset)
	isToday := timeutil.SameLocalDate(sc.loc, dayUTC, now)
	closures := occurrence.ClosuresForDay(sc.schedules, sc.loc, dayUTC, offset, isToday)

	duration := sc.req.DurationMinutes
	if duration > domain.MaxAppointmentDurationMinutes {
		duration = domain.MaxAppointmentDurationMinutes
	}

	for i := range sc.docks {
		dock := &sc.docks[i]

		if !sc.req.ForAutoAppoint {
			r, ok := sc.dockRanges[dock.ID]
			if !ok || !r.Contains(dayUTC) {
				continue
			}
		}

		if sc.checkQuota {
			daily := capacity.DockDailyCapacity(dock, dayUTC, dayAppointments, occurrences, sc.doorIndex, sc.req.QuotaOverrides)
			daily.ApptChange = 1
			daily.CaseChange = sc.totalCases
			daily.PalletChange = sc.totalPallets
			resp.Data.DockCapacities = append(resp.Data.DockCapacities, daily)
			if !daily.HasCapacity() {
				continue
			}
		}

		cutoff := availability.EvaluateCutoff(dock, sc.loc, now, dayUTC, sc.req.IsCarrierCaller, sc.sameDayDisallowed)
		if cutoff != availability.CutoffNone {
			resp.Messages = appendUniqueMessage(resp.Messages, domain.NewMessage(domain.CodeDockCutoff,
				fmt.Sprintf("dock %s is past its booking cutoff for this date", dock.Name)))
			if cutoff == availability.CutoffHide {
				continue
			}
		}

		slotTimes := slotsearch.GenerateSlotTimes(sc.site, sc.loc, dayUTC, duration, sc.site.AppointmentInterval())

		for _, door := range sc.doorsByDock[dock.ID] {
			if !sc.req.ForAutoAppoint && !door.ServesUnitCount(sc.totalUnits) {
				continue
			}

			for _, start := range slotTimes {
				if !start.After(now) {
					continue
				}
				end := start.Add(time.Duration(duration) * time.Minute)

				if availability.HasReservationConflict(occurrences, door.ID, start, end) {
					continue
				}
				if availability.HasAppointmentConflict(sc.appointments, door.ID, start, end, sc.req.ExcludeAppointmentID) {
					continue
				}
				if !sc.req.ForAutoAppoint {
					if availability.HasClosureConflict(closures, door.ID, dock.ID, start, end) {
						continue
					}
					if !capacity.IsEquipmentAvailableForSlot(start, duration, sc.appointments, sc.orderVendors, sc.allVendors, sc.equipment, sc.doorIndex) {
						continue
					}
				}

				resp.Data.Slots = append(resp.Data.Slots, Slot{
					Hash:      slotsearch.ComputeSlotHash(start, []int64{door.ID}),
					StartTime: start,
					EndTime:   end,
					DoorID:    door.ID,
					DoorName:  door.Name,
					DockID:    dock.ID,
					Priority:  door.Priority,
					BandLabel: fmt.Sprintf("%d-%d", door.MinUnitCount, door.MaxUnitCount),
				})
			}
		}
	}
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
