package reservation

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

// Repository репозиторий шаблонов резерваций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveBySite получает активные шаблоны резерваций площадки вместе с
// их дверями, ограничениями по перевозчикам/поставщикам и датами-исключениями
func (r *Repository) ListActiveBySite(ctx context.Context, siteID int64) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"site_id",
		"active",
		"days",
		"start_time",
		"duration_minutes",
		"min_pallets",
		"max_pallets",
		"min_cases",
		"max_cases",
		"effective_start_date",
		"effective_end_date",
	).
		From("reservations").
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

	reservations := make([]domain.Reservation, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var res domain.Reservation
		var days int
		var startTime string
		var minPallets, maxPallets, minCases, maxCases sql.NullInt64
		var effStart, effEnd sql.NullTime

		if err := rows.Scan(
			&res.ID,
			&res.SiteID,
			&res.Active,
			&days,
			&startTime,
			&res.DurationMinutes,
			&minPallets,
			&maxPallets,
			&minCases,
			&maxCases,
			&effStart,
			&effEnd,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveBySite - scan reservation: %v", ErrScanRow, err)
		}

		res.Days = domain.WeekdaySet(days)
		res.StartTime = types.TimeString(startTime)
		res.MinPallets = nullableInt(minPallets)
		res.MaxPallets = nullableInt(maxPallets)
		res.MinCases = nullableInt(minCases)
		res.MaxCases = nullableInt(maxCases)
		if effStart.Valid {
			t := effStart.Time
			res.EffectiveStartDate = &t
		}
		if effEnd.Valid {
			t := effEnd.Time
			res.EffectiveEndDate = &t
		}

		reservations = append(reservations, res)
		ids = append(ids, res.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySite - rows error: %v", ErrScanRow, err)
	}

	if len(reservations) == 0 {
		return reservations, nil
	}

	index := make(map[int64]*domain.Reservation, len(reservations))
	for i := range reservations {
		index[reservations[i].ID] = &reservations[i]
	}

	if err := r.attachIDs(ctx, "reservation_doors", "door_id", ids, func(resID, doorID int64) {
		if res, ok := index[resID]; ok {
			res.DoorIDs = append(res.DoorIDs, doorID)
		}
	}); err != nil {
		return nil, err
	}
	if err := r.attachIDs(ctx, "reservation_carriers", "carrier_id", ids, func(resID, carrierID int64) {
		if res, ok := index[resID]; ok {
			res.CarrierIDs = append(res.CarrierIDs, carrierID)
		}
	}); err != nil {
		return nil, err
	}
	if err := r.attachIDs(ctx, "reservation_vendors", "vendor_id", ids, func(resID, vendorID int64) {
		if res, ok := index[resID]; ok {
			res.VendorIDs = append(res.VendorIDs, vendorID)
		}
	}); err != nil {
		return nil, err
	}
	if err := r.attachExceptions(ctx, index, ids); err != nil {
		return nil, err
	}

	return reservations, nil
}

// attachIDs подгружает связанные ID из таблицы связи reservation_id -> column
func (r *Repository) attachIDs(ctx context.Context, table, column string, ids []int64, apply func(resID, id int64)) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("reservation_id", column).
		From(table).
		Where("reservation_id = ANY(?)", pq.Array(ids)).
		OrderBy("reservation_id ASC, " + column + " ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachIDs(%s) - build select query: %v", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachIDs(%s) - execute query: %v", ErrExecQuery, table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var resID, id int64
		if err := rows.Scan(&resID, &id); err != nil {
			return fmt.Errorf("%w: attachIDs(%s) - scan row: %v", ErrScanRow, table, err)
		}
		apply(resID, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachIDs(%s) - rows error: %v", ErrScanRow, table, err)
	}

	return nil
}

func (r *Repository) attachExceptions(ctx context.Context, index map[int64]*domain.Reservation, ids []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("reservation_id", "exception_date").
		From("reservation_exceptions").
		Where("reservation_id = ANY(?)", pq.Array(ids)).
		OrderBy("reservation_id ASC, exception_date ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var resID int64
		var date sql.NullTime
		if err := rows.Scan(&resID, &date); err != nil {
			return fmt.Errorf("%w: attachExceptions - scan row: %v", ErrScanRow, err)
		}
		if res, ok := index[resID]; ok && date.Valid {
			res.ExceptionDates = append(res.ExceptionDates, date.Time)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachExceptions - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}
