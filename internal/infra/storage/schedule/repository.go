package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/types"
)

// Repository репозиторий расписаний закрытий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveBySite получает активные закрытия площадки с привязанными доками
// и дверями
func (r *Repository) ListActiveBySite(ctx context.Context, siteID int64) ([]domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"site_id",
		"active",
		"availability",
		"days",
		"start_time",
		"end_time",
		"effective_start_date",
		"effective_end_date",
		"is_receiving_day",
	).
		From("schedules").
		Where(squirrel.Eq{"site_id": siteID, "active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySite - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySite - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]domain.Schedule, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var s domain.Schedule
		var days int
		var startTime, endTime string
		var effStart, effEnd sql.NullTime

		if err := rows.Scan(
			&s.ID,
			&s.SiteID,
			&s.Active,
			&s.Availability,
			&days,
			&startTime,
			&endTime,
			&effStart,
			&effEnd,
			&s.IsReceivingDay,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveBySite - scan schedule: %v", ErrScanRow, err)
		}

		s.Days = domain.WeekdaySet(days)
		s.StartTime = types.TimeString(startTime)
		s.EndTime = types.TimeString(endTime)
		if effStart.Valid {
			t := effStart.Time
			s.EffectiveStartDate = &t
		}
		if effEnd.Valid {
			t := effEnd.Time
			s.EffectiveEndDate = &t
		}

		schedules = append(schedules, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySite - rows error: %v", ErrScanRow, err)
	}

	if len(schedules) == 0 {
		return schedules, nil
	}

	index := make(map[int64]*domain.Schedule, len(schedules))
	for i := range schedules {
		index[schedules[i].ID] = &schedules[i]
	}

	if err := r.attachScopes(ctx, "schedule_docks", "dock_id", ids, func(scheduleID, dockID int64) {
		if s, ok := index[scheduleID]; ok {
			s.DockIDs = append(s.DockIDs, dockID)
		}
	}); err != nil {
		return nil, err
	}
	if err := r.attachScopes(ctx, "schedule_doors", "door_id", ids, func(scheduleID, doorID int64) {
		if s, ok := index[scheduleID]; ok {
			s.DoorIDs = append(s.DoorIDs, doorID)
		}
	}); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) attachScopes(ctx context.Context, table, column string, ids []int64, apply func(scheduleID, id int64)) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("schedule_id", column).
		From(table).
		Where("schedule_id = ANY(?)", pq.Array(ids)).
		OrderBy("schedule_id ASC, " + column + " ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachScopes(%s) - build select query: %v", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachScopes(%s) - execute query: %v", ErrExecQuery, table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var scheduleID, id int64
		if err := rows.Scan(&scheduleID, &id); err != nil {
			return fmt.Errorf("%w: attachScopes(%s) - scan row: %v", ErrScanRow, table, err)
		}
		apply(scheduleID, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachScopes(%s) - rows error: %v", ErrScanRow, table, err)
	}

	return nil
}
