package find_unreserved_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/site"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/slotsearch"
	"github.com/m04kA/SMC-DockSchedulingService/internal/usecase/resolve_door_group"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// Usecase свободный подбор слотов: обход кандидатных дат, перебор дверей
// группы и фильтрация кандидатов по конфликтам, закрытиям, оборудованию,
// cutoff-времени и дневным квотам доков
type Usecase struct {
	resolver   DoorGroupResolver
	siteRepo   SiteRepository
	apptRepo   AppointmentRepository
	resRepo    ReservationRepository
	schedRepo  ScheduleRepository
	equipRepo  EquipmentRepository
	vendorRepo VendorRepository
	logger     Logger
}

func NewUseCase(
	resolver DoorGroupResolver,
	siteRepo SiteRepository,
	apptRepo AppointmentRepository,
	resRepo ReservationRepository,
	schedRepo ScheduleRepository,
	equipRepo EquipmentRepository,
	vendorRepo VendorRepository,
	logger Logger,
) *Usecase {
	return &Usecase{
		resolver:   resolver,
		siteRepo:   siteRepo,
		apptRepo:   apptRepo,
		resRepo:    resRepo,
		schedRepo:  schedRepo,
		equipRepo:  equipRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// Execute ищет свободные слоты для набора заказов.
//
// При заданной дате проверяется только она; без даты выполняется обход от
// идеальной даты набора осциллирующими шагами -1, +1, -2, +2, ... в пределах
// допустимых диапазонов доков, не более 10 различных дней. Движок не
// обращается к системным часам: момент "сейчас" передаётся в запросе.
func (uc *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	siteInfo, err := uc.siteRepo.GetByID(ctx, req.SiteID)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			return nil, fmt.Errorf("%w: site %d", ErrSiteNotFound, req.SiteID)
		}
		uc.logger.Error("find_unreserved_slots: failed to load site %d: %v", req.SiteID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	loc, err := siteInfo.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	orderVendors, err := uc.vendorRepo.ListBySite(ctx, req.SiteID, domain.CollectVendorIDs(req.Orders))
	if err != nil {
		uc.logger.Error("find_unreserved_slots: failed to load order vendors: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	allVendors, err := uc.vendorRepo.ListBySite(ctx, req.SiteID, nil)
	if err != nil {
		uc.logger.Error("find_unreserved_slots: failed to load site vendors: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	dgResp, err := uc.resolver.Execute(ctx, &resolve_door_group.Request{
		SiteID:               req.SiteID,
		Orders:               req.Orders,
		DoorGroupID:          req.DoorGroupID,
		Vendors:              orderVendors,
		IncludeInactiveDoors: req.ForAutoAppoint,
		CarrierID:            req.CarrierID,
		DeliveryCarrierID:    req.DeliveryCarrierID,
	})
	if err != nil {
		return nil, err
	}

	resp := &Response{Messages: dgResp.Messages}
	if !dgResp.Success || dgResp.Data.DoorGroupID == nil {
		return resp, nil
	}
	resp.Success = true
	resp.Data.DoorGroupID = dgResp.Data.DoorGroupID
	resp.Data.DoorGroupName = dgResp.Data.DoorGroupName

	sc, ok := uc.buildSearchContext(req, siteInfo, loc, dgResp, orderVendors, allVendors)
	if !ok {
		return resp, nil
	}

	if err := uc.loadSnapshot(ctx, req, sc); err != nil {
		return nil, err
	}

	startDay := sc.earliest
	if req.RequestedDate != nil {
		startDay = timeutil.UTCMidnight(loc, *req.RequestedDate)
	} else if dgResp.Data.IdealDate != nil {
		startDay = timeutil.UTCMidnight(loc, *dgResp.Data.IdealDate)
	}

	uc.search(sc, startDay, resp)

	sort.SliceStable(resp.Data.Slots, func(i, j int) bool {
		a, b := &resp.Data.Slots[i], &resp.Data.Slots[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.BandLabel < b.BandLabel
	})
	if req.MaxResults > 0 && len(resp.Data.Slots) > req.MaxResults {
		resp.Data.Slots = resp.Data.Slots[:req.MaxResults]
	}

	return resp, nil
}

// search обходит кандидатные даты и накапливает слоты в resp
func (uc *Usecase) search(sc *searchContext, startDay time.Time, resp *Response) {
	if sc.req.RequestedDate != nil {
		if !startDay.Before(sc.earliest) && !startDay.After(sc.latest) {
			uc.evaluateDay(sc, startDay, resp)
		}
		return
	}

	walker := slotsearch.NewDateWalker(sc.loc, startDay, sc.earliest, sc.latest)
	probed := 0

	day := walker.Current()
	inBounds := !day.Before(sc.earliest) && !day.After(sc.latest)

	for {
		if inBounds {
			uc.evaluateDay(sc, day, resp)
			probed++
		}
		if sc.req.MaxResults > 0 && len(resp.Data.Slots) >= sc.req.MaxResults {
			return
		}
		if probed >= domain.MaxSearchDays {
			return
		}
		if !walker.Advance() {
			return
		}
		day = walker.Current()
		inBounds = true
	}
}

func (uc *Usecase) loadSnapshot(ctx context.Context, req *Request, sc *searchContext) error {
	from := timeutil.AddLocalDays(sc.loc, sc.earliest, -1)
	to := timeutil.AddLocalDays(sc.loc, sc.latest, 2)

	appointments, err := uc.apptRepo.ListBlockingInWindow(ctx, req.SiteID, from, to)
	if err != nil {
		uc.logger.Error("find_unreserved_slots: failed to load appointments: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	// Переносимая встреча не участвует ни в конфликтах, ни в квотах
	sc.appointments = appointments[:0:0]
	for i := range appointments {
		if appointments[i].ID != req.ExcludeAppointmentID {
			sc.appointments = append(sc.appointments, appointments[i])
		}
	}

	if sc.reservations, err = uc.resRepo.ListActiveBySite(ctx, req.SiteID); err != nil {
		uc.logger.Error("find_unreserved_slots: failed to load reservations: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if sc.schedules, err = uc.schedRepo.ListActiveBySite(ctx, req.SiteID); err != nil {
		uc.logger.Error("find_unreserved_slots: failed to load schedules: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if sc.equipment, err = uc.equipRepo.ListBySite(ctx, req.SiteID); err != nil {
		uc.logger.Error("find_unreserved_slots: failed to load equipment: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}
