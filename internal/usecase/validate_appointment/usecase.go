package validate_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/infra/storage/site"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/timeutil"
)

// Usecase финальная перепроверка слота: выполняется непосредственно перед
// фиксацией брони, когда подбор уже отработал на снапшоте. Единственная
// точка, где конфликт фатален, а не рекомендательный.
type Usecase struct {
	siteRepo SiteRepository
	apptRepo AppointmentRepository
	logger   Logger
}

func NewUseCase(siteRepo SiteRepository, apptRepo AppointmentRepository, logger Logger) *Usecase {
	return &Usecase{
		siteRepo: siteRepo,
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// Execute проверяет, что все двери слота существуют, активны и не заняты
// блокирующей встречей в запрошенном окне. Cutoff-время дока добавляет
// рекомендательное сообщение, но не блокирует фиксацию.
func (uc *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	siteInfo, err := uc.siteRepo.GetByID(ctx, req.SiteID)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			return nil, fmt.Errorf("%w: site %d", ErrSiteNotFound, req.SiteID)
		}
		uc.logger.Error("validate_appointment: failed to load site %d: %v", req.SiteID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	loc, err := siteInfo.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	doors, err := uc.siteRepo.ListDoorsByIDs(ctx, req.DoorIDs)
	if err != nil {
		uc.logger.Error("validate_appointment: failed to load doors: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	doorIndex := make(map[int64]*domain.Door, len(doors))
	dockIDs := make([]int64, 0, len(doors))
	for i := range doors {
		doorIndex[doors[i].ID] = &doors[i]
		dockIDs = append(dockIDs, doors[i].DockID)
	}

	resp := &Response{}

	for _, doorID := range req.DoorIDs {
		door, ok := doorIndex[doorID]
		if !ok {
			return nil, fmt.Errorf("%w: door %d", ErrDoorNotFound, doorID)
		}
		if !door.Active {
			resp.Messages = append(resp.Messages, domain.NewMessage(domain.CodeInvalidDoorGroup,
				fmt.Sprintf("door %s is inactive", door.Name)))
			return resp, nil
		}
	}

	from := req.StartTime
	to := req.StartTime.Add(time.Duration(req.DurationMinutes) * time.Minute)

	occupied, err := uc.apptRepo.AnyBlockingOnDoors(ctx, req.SiteID, req.DoorIDs, from, to, req.ExcludeAppointmentID)
	if err != nil {
		uc.logger.Error("validate_appointment: occupancy recheck failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if occupied {
		resp.Occupied = true
		return resp, nil
	}

	docks, err := uc.siteRepo.ListDocksByIDs(ctx, dockIDs)
	if err != nil {
		uc.logger.Error("validate_appointment: failed to load docks: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	dayUTC := timeutil.LocalMidnight(loc, req.StartTime)
	for i := range docks {
		cutoff := availability.EvaluateCutoff(&docks[i], loc, req.CurrentUTCTime, dayUTC, req.IsCarrierCaller, req.SameDayDisallowed)
		if cutoff != availability.CutoffNone {
			resp.Messages = append(resp.Messages, domain.NewMessage(domain.CodeDockCutoff,
				fmt.Sprintf("dock %s is past its booking cutoff for this date", docks[i].Name)))
			break
		}
	}

	resp.Valid = true
	return resp, nil
}

func validateRequest(req *Request) error {
	if req.SiteID <= 0 {
		return fmt.Errorf("%w: site_id must be positive", ErrInvalidInput)
	}
	if len(req.DoorIDs) == 0 {
		return fmt.Errorf("%w: at least one door is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
