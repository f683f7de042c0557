package resolve_door_group

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/site"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/slotsearch"
)

// Usecase определяет группу дверей и доки для набора заказов
type Usecase struct {
	siteRepo   SiteRepository
	vendorRepo VendorRepository
	logger     Logger
}

func NewUseCase(siteRepo SiteRepository, vendorRepo VendorRepository, logger Logger) *Usecase {
	return &Usecase{
		siteRepo:   siteRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// Execute разрешает группу дверей по цепочке приоритетов: привязка
// перевозчика к площадке > явно запрошенная группа > группа с наибольшим
// объёмом заказов > группа по умолчанию площадки. Для разрешённой группы
// собирает двери, доки и допустимые диапазоны дат поставки.
func (uc *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	siteInfo, err := uc.siteRepo.GetByID(ctx, req.SiteID)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			return nil, fmt.Errorf("%w: site %d", ErrSiteNotFound, req.SiteID)
		}
		uc.logger.Error("resolve_door_group: failed to load site %d: %v", req.SiteID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	loc, err := siteInfo.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{}

	doorGroupID, carrierOverride, err := uc.resolveCarrierOverride(ctx, req)
	if err != nil {
		return nil, err
	}

	vendors := req.Vendors
	if vendors == nil {
		vendors, err = uc.vendorRepo.ListBySite(ctx, req.SiteID, domain.CollectVendorIDs(req.Orders))
		if err != nil {
			uc.logger.Error("resolve_door_group: failed to load vendors for site %d: %v", req.SiteID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	racks, err := uc.loadRacks(ctx, req)
	if err != nil {
		return nil, err
	}

	vendorDoorGroup := make(map[int64]int64, len(vendors))
	for i := range vendors {
		if vendors[i].DoorGroupID != nil {
			vendorDoorGroup[vendors[i].ID] = *vendors[i].DoorGroupID
		}
	}

	var quantities []doorGroupQuantity
	for i := range req.Orders {
		quantities = append(quantities, accumulateOrderQuantities(&req.Orders[i], siteInfo.UnitType, racks, vendorDoorGroup)...)
	}

	// Явная группа действует, только когда перевозчик не навязал свою
	if doorGroupID == 0 && req.DoorGroupID != 0 {
		doorGroupID = req.DoorGroupID
	}
	if doorGroupID == 0 {
		doorGroupID = dominantDoorGroup(quantities)
	}
	if doorGroupID == 0 {
		if siteInfo.DefaultDoorGroupID == nil {
			resp.Messages = append(resp.Messages, domain.NewMessage(domain.CodeNoDefaultDoorGroup,
				fmt.Sprintf("site %d has no default door group and orders resolve to none", req.SiteID)))
			return resp, nil
		}
		doorGroupID = *siteInfo.DefaultDoorGroupID
	}

	doorGroup, err := uc.siteRepo.GetDoorGroup(ctx, req.SiteID, doorGroupID)
	if err != nil {
		if errors.Is(err, site.ErrDoorGroupNotFound) {
			resp.Messages = append(resp.Messages, domain.NewMessage(domain.CodeInvalidDoorGroup,
				fmt.Sprintf("door group %d does not exist at site %d", doorGroupID, req.SiteID)))
			return resp, nil
		}
		uc.logger.Error("resolve_door_group: failed to load door group %d: %v", doorGroupID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !carrierOverride && !siteInfo.AllowApptOrdersDiffDock {
		if msg, err := uc.checkSameDockRestriction(ctx, req, quantities); err != nil {
			return nil, err
		} else if msg != nil {
			resp.Messages = append(resp.Messages, *msg)
		}
	}

	if err := uc.fillDoorsAndDocks(ctx, req, siteInfo, loc, doorGroup, resp); err != nil {
		return nil, err
	}

	resp.Data.IdealDate = idealDueDate(siteInfo.UnitType, req.Orders)
	resp.Success = true

	return resp, nil
}

// resolveCarrierOverride ищет привязку группы дверей к перевозчику заявки:
// сначала carrier of record, затем перевозчик доставки
func (uc *Usecase) resolveCarrierOverride(ctx context.Context, req *Request) (int64, bool, error) {
	carrierIDs := make([]int64, 0, 2)
	if req.CarrierID != 0 {
		carrierIDs = append(carrierIDs, req.CarrierID)
	}
	if req.DeliveryCarrierID != 0 && req.DeliveryCarrierID != req.CarrierID {
		carrierIDs = append(carrierIDs, req.DeliveryCarrierID)
	}
	if len(carrierIDs) == 0 {
		return 0, false, nil
	}

	overrides, err := uc.siteRepo.ListCarrierOverrides(ctx, req.SiteID, carrierIDs)
	if err != nil {
		uc.logger.Error("resolve_door_group: failed to load carrier overrides for site %d: %v", req.SiteID, err)
		return 0, false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	pick := func(carrierID int64) *int64 {
		for i := range overrides {
			if overrides[i].CarrierID == carrierID && overrides[i].DoorGroupID != nil {
				return overrides[i].DoorGroupID
			}
		}
		return nil
	}

	if req.CarrierID != 0 {
		if dg := pick(req.CarrierID); dg != nil {
			return *dg, true, nil
		}
	}
	if req.DeliveryCarrierID != 0 {
		if dg := pick(req.DeliveryCarrierID); dg != nil {
			return *dg, true, nil
		}
	}
	return 0, false, nil
}

func (uc *Usecase) loadRacks(ctx context.Context, req *Request) (map[int64]*domain.Rack, error) {
	seen := make(map[int64]struct{})
	var rackIDs []int64
	for i := range req.Orders {
		for j := range req.Orders[i].Details {
			id := req.Orders[i].Details[j].RackID
			if id == 0 {
				continue
			}
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				rackIDs = append(rackIDs, id)
			}
		}
	}
	if len(rackIDs) == 0 {
		return map[int64]*domain.Rack{}, nil
	}

	racks, err := uc.siteRepo.ListRacks(ctx, req.SiteID, rackIDs)
	if err != nil {
		uc.logger.Error("resolve_door_group: failed to load racks for site %d: %v", req.SiteID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	index := make(map[int64]*domain.Rack, len(racks))
	for i := range racks {
		index[racks[i].ID] = &racks[i]
	}
	return index, nil
}

// checkSameDockRestriction сообщает о заказах, которые невозможно принять на
// одном доке: заказ без строк или группы дверей без общего дока
func (uc *Usecase) checkSameDockRestriction(ctx context.Context, req *Request, quantities []doorGroupQuantity) (*domain.Message, error) {
	for i := range req.Orders {
		if len(req.Orders[i].Details) == 0 {
			msg := domain.NewMessage(domain.CodeSameDockRestriction,
				fmt.Sprintf("order %d has no detail lines to route to a dock", req.Orders[i].ID))
			return &msg, nil
		}
	}

	distinct := make(map[int64]struct{})
	for _, q := range quantities {
		distinct[q.doorGroupID] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, nil
	}

	var common map[int64]struct{}
	for dg := range distinct {
		dockIDs, err := uc.siteRepo.ListDockIDsByDoorGroup(ctx, dg)
		if err != nil {
			uc.logger.Error("resolve_door_group: failed to load dock ids for door group %d: %v", dg, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		next := make(map[int64]struct{})
		for _, id := range dockIDs {
			if common == nil {
				next[id] = struct{}{}
			} else if _, ok := common[id]; ok {
				next[id] = struct{}{}
			}
		}
		common = next
		if len(common) == 0 {
			msg := domain.NewMessage(domain.CodeSameDockRestriction,
				"orders route to door groups with no dock in common")
			return &msg, nil
		}
	}
	return nil, nil
}

// fillDoorsAndDocks собирает двери группы (активные, либо все при
// IncludeInactiveDoors), их доки и допустимый диапазон дат каждого дока
func (uc *Usecase) fillDoorsAndDocks(
	ctx context.Context,
	req *Request,
	siteInfo *domain.Site,
	loc *time.Location,
	doorGroup *domain.DoorGroup,
	resp *Response,
) error {
	doors, err := uc.siteRepo.ListDoorsByDoorGroup(ctx, doorGroup.ID)
	if err != nil {
		uc.logger.Error("resolve_door_group: failed to load doors for door group %d: %v", doorGroup.ID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp.Data.DoorGroupID = &doorGroup.ID
	resp.Data.DoorGroupName = doorGroup.Name
	resp.Data.DoorsByDock = make(map[int64][]domain.Door)

	var dockIDs []int64
	for i := range doors {
		if !doors[i].Active && !req.IncludeInactiveDoors {
			continue
		}
		if _, ok := resp.Data.DoorsByDock[doors[i].DockID]; !ok {
			dockIDs = append(dockIDs, doors[i].DockID)
		}
		resp.Data.DoorsByDock[doors[i].DockID] = append(resp.Data.DoorsByDock[doors[i].DockID], doors[i])
	}
	if len(dockIDs) == 0 {
		return nil
	}

	docks, err := uc.siteRepo.ListDocksByIDs(ctx, dockIDs)
	if err != nil {
		uc.logger.Error("resolve_door_group: failed to load docks: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	dueDates := make([]time.Time, 0, len(req.Orders))
	for i := range req.Orders {
		dueDates = append(dueDates, *req.Orders[i].DueDate)
	}

	resp.Data.Docks = docks

	var first, last *time.Time
	for i := range docks {
		dock := &docks[i]
		item := DockItem{DockID: dock.ID, DockName: dock.Name}

		r := slotsearch.ValidDateRangeForDock(dock, dueDates, loc)
		if r == nil {
			resp.Messages = append(resp.Messages, domain.NewMessage(domain.CodeDockDateThreshold,
				fmt.Sprintf("dock %s cannot receive all orders within its schedule thresholds", dock.Name)))
			resp.Data.DockList = append(resp.Data.DockList, item)
			continue
		}

		item.Range = r
		if r.Start.Year() >= 1000 {
			local := r.Start.In(loc)
			item.FirstDate = &local
			if first == nil || local.Before(*first) {
				first = &local
			}
		}
		if r.End.Year() <= 3000 {
			local := r.End.In(loc)
			item.LastDate = &local
			if last == nil || local.After(*last) {
				last = &local
			}
		}

		resp.Data.DeliveryWindowExists = true
		resp.Data.DockList = append(resp.Data.DockList, item)
	}

	resp.Data.FirstDate = first
	resp.Data.LastDate = last
	return nil
}

// idealDueDate дата поставки заказа с наибольшим объёмом в единицах площадки
func idealDueDate(unitType domain.UnitType, orders []domain.SlotOrder) *time.Time {
	var best *domain.SlotOrder
	for i := range orders {
		if best == nil || orders[i].UnitCount(unitType) > best.UnitCount(unitType) {
			best = &orders[i]
		}
	}
	if best == nil {
		return nil
	}
	return best.DueDate
}
