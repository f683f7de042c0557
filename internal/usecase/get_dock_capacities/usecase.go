package get_dock_capacities

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/site"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/capacity"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/occurrence"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// Usecase строит дневные срезы ёмкости всех доков площадки на дату
type Usecase struct {
	siteRepo SiteRepository
	apptRepo AppointmentRepository
	resRepo  ReservationRepository
	logger   Logger
}

func NewUseCase(siteRepo SiteRepository, apptRepo AppointmentRepository, resRepo ReservationRepository, logger Logger) *Usecase {
	return &Usecase{
		siteRepo: siteRepo,
		apptRepo: apptRepo,
		resRepo:  resRepo,
		logger:   logger,
	}
}

// Execute возвращает срез ёмкости каждого дока площадки на бизнес-день даты
func (uc *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SiteID <= 0 {
		return nil, fmt.Errorf("%w: site_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	siteInfo, err := uc.siteRepo.GetByID(ctx, req.SiteID)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			return nil, fmt.Errorf("%w: site %d", ErrSiteNotFound, req.SiteID)
		}
		uc.logger.Error("get_dock_capacities: failed to load site %d: %v", req.SiteID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	loc, err := siteInfo.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	dayUTC := timeutil.UTCMidnight(loc, req.Date)

	docks, err := uc.siteRepo.ListDocks(ctx, req.SiteID)
	if err != nil {
		uc.logger.Error("get_dock_capacities: failed to load docks: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	doors, err := uc.siteRepo.ListDoors(ctx, req.SiteID)
	if err != nil {
		uc.logger.Error("get_dock_capacities: failed to load doors: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	doorIndex := make(map[int64]*domain.Door, len(doors))
	for i := range doors {
		doorIndex[doors[i].ID] = &doors[i]
	}

	// Встречи бизнес-дня: окно сдвинуто на BusinessDayOffset площадки
	offset := time.Duration(siteInfo.BusinessDayOffset) * time.Hour
	from := timeutil.LocalClockUTC(loc, dayUTC, offset)
	to := timeutil.LocalClockUTC(loc, timeutil.AddLocalDays(loc, dayUTC, 1), offset)

	appointments, err := uc.apptRepo.ListBlockingInWindow(ctx, req.SiteID, from, to)
	if err != nil {
		uc.logger.Error("get_dock_capacities: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	reservations, err := uc.resRepo.ListActiveBySite(ctx, req.SiteID)
	if err != nil {
		uc.logger.Error("get_dock_capacities: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	occurrences := occurrence.ReservationsForDay(reservations, loc, dayUTC, siteInfo.BusinessDayOffset)

	resp := &Response{Capacities: make([]capacity.DockDaily, 0, len(docks))}
	for i := range docks {
		daily := capacity.DockDailyCapacity(&docks[i], dayUTC, appointments, occurrences, doorIndex, req.QuotaOverrides)
		if req.PendingAppt {
			daily.ApptChange = 1
		}
		daily.CaseChange = req.PendingCases
		daily.PalletChange = req.PendingPallets
		resp.Capacities = append(resp.Capacities, daily)
	}

	return resp, nil
}
