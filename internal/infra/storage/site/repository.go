package site

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

// Repository репозиторий конфигурации площадки: площадки, доки, двери,
// группы дверей, рэки и привязки перевозчиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var dockColumns = []string{
	"id",
	"site_id",
	"name",
	"early_schedule_threshold",
	"late_schedule_threshold",
	"schedule_cutoff_time",
	"unreserved_appts_limit",
	"reserved_appts_limit",
	"unreserved_cases_limit",
	"reserved_cases_limit",
	"unreserved_pallets_limit",
	"reserved_pallets_limit",
}

var doorColumns = []string{
	"id",
	"dock_id",
	"door_group_id",
	"name",
	"active",
	"min_unit_count",
	"max_unit_count",
	"priority",
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, siteID int64) (*domain.Site, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"time_zone",
		"business_day_offset",
		"unit_type",
		"appointment_interval_minutes",
		"appointment_date_limit_days",
		"default_door_group_id",
		"maximum_reservation_slots",
		"allow_appt_orders_diff_dock",
		"dock_threshold_feature",
	).
		From("sites").
		Where(squirrel.Eq{"id": siteID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Site
	var interval, dateLimit sql.NullInt64
	var defaultDoorGroup sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.TimeZone,
		&s.BusinessDayOffset,
		&s.UnitType,
		&interval,
		&dateLimit,
		&defaultDoorGroup,
		&s.MaximumReservationSlots,
		&s.AllowApptOrdersDiffDock,
		&s.DockThresholdFeature,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan site: %v", ErrScanRow, err)
	}

	s.AppointmentIntervalMinutes = nullableInt(interval)
	s.AppointmentDateLimitDays = nullableInt(dateLimit)
	s.DefaultDoorGroupID = nullableInt64(defaultDoorGroup)

	return &s, nil
}

// GetDoorGroup получает группу дверей площадки
func (r *Repository) GetDoorGroup(ctx context.Context, siteID, doorGroupID int64) (*domain.DoorGroup, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "site_id", "name").
		From("door_groups").
		Where(squirrel.Eq{"id": doorGroupID, "site_id": siteID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDoorGroup - build select query: %v", ErrBuildQuery, err)
	}

	var dg domain.DoorGroup
	err = executor.QueryRowContext(ctx, query, args...).Scan(&dg.ID, &dg.SiteID, &dg.Name)
	if err == sql.ErrNoRows {
		return nil, ErrDoorGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDoorGroup - scan door group: %v", ErrScanRow, err)
	}

	return &dg, nil
}

// ListCarrierOverrides получает привязки площадка-перевозчик для указанных перевозчиков
func (r *Repository) ListCarrierOverrides(ctx context.Context, siteID int64, carrierIDs []int64) ([]domain.SiteCarrier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("site_id", "carrier_id", "door_group_id").
		From("site_carriers").
		Where(squirrel.Eq{"site_id": siteID}).
		Where("carrier_id = ANY(?)", pq.Array(carrierIDs)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCarrierOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCarrierOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.SiteCarrier, 0)
	for rows.Next() {
		var sc domain.SiteCarrier
		var doorGroup sql.NullInt64
		if err := rows.Scan(&sc.SiteID, &sc.CarrierID, &doorGroup); err != nil {
			return nil, fmt.Errorf("%w: ListCarrierOverrides - scan row: %v", ErrScanRow, err)
		}
		sc.DoorGroupID = nullableInt64(doorGroup)
		result = append(result, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCarrierOverrides - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListRacks получает рэки площадки с указанными ID
func (r *Repository) ListRacks(ctx context.Context, siteID int64, rackIDs []int64) ([]domain.Rack, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "site_id", "door_group_id").
		From("racks").
		Where(squirrel.Eq{"site_id": siteID}).
		Where("id = ANY(?)", pq.Array(rackIDs)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRacks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRacks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.Rack, 0)
	for rows.Next() {
		var rack domain.Rack
		if err := rows.Scan(&rack.ID, &rack.SiteID, &rack.DoorGroupID); err != nil {
			return nil, fmt.Errorf("%w: ListRacks - scan row: %v", ErrScanRow, err)
		}
		result = append(result, rack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRacks - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListDoorsByDoorGroup получает все двери группы, приоритетные первыми
func (r *Repository) ListDoorsByDoorGroup(ctx context.Context, doorGroupID int64) ([]domain.Door, error) {
	builder := psqlbuilder.Select(doorColumns...).
		From("doors").
		Where(squirrel.Eq{"door_group_id": doorGroupID}).
		OrderBy("priority ASC, id ASC")
	return r.listDoors(ctx, builder, "ListDoorsByDoorGroup")
}

// ListDoors получает все двери площадки
func (r *Repository) ListDoors(ctx context.Context, siteID int64) ([]domain.Door, error) {
	builder := psqlbuilder.Select(doorColumns...).
		From("doors").
		Where("dock_id IN (SELECT id FROM docks WHERE site_id = ?)", siteID).
		OrderBy("priority ASC, id ASC")
	return r.listDoors(ctx, builder, "ListDoors")
}

// ListDoorsByIDs получает двери по списку ID
func (r *Repository) ListDoorsByIDs(ctx context.Context, doorIDs []int64) ([]domain.Door, error) {
	builder := psqlbuilder.Select(doorColumns...).
		From("doors").
		Where("id = ANY(?)", pq.Array(doorIDs)).
		OrderBy("priority ASC, id ASC")
	return r.listDoors(ctx, builder, "ListDoorsByIDs")
}

// ListDocks получает все доки площадки
func (r *Repository) ListDocks(ctx context.Context, siteID int64) ([]domain.Dock, error) {
	builder := psqlbuilder.Select(dockColumns...).
		From("docks").
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("id ASC")
	return r.listDocks(ctx, builder, "ListDocks")
}

// ListDocksByIDs получает доки по списку ID
func (r *Repository) ListDocksByIDs(ctx context.Context, dockIDs []int64) ([]domain.Dock, error) {
	builder := psqlbuilder.Select(dockColumns...).
		From("docks").
		Where("id = ANY(?)", pq.Array(dockIDs)).
		OrderBy("id ASC")
	return r.listDocks(ctx, builder, "ListDocksByIDs")
}

// ListDockIDsByDoorGroup получает ID доков, имеющих двери указанной группы
func (r *Repository) ListDockIDsByDoorGroup(ctx context.Context, doorGroupID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT dock_id").
		From("doors").
		Where(squirrel.Eq{"door_group_id": doorGroupID}).
		OrderBy("dock_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDockIDsByDoorGroup - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDockIDsByDoorGroup - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListDockIDsByDoorGroup - scan dock_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDockIDsByDoorGroup - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

func (r *Repository) listDoors(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]domain.Door, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	doors := make([]domain.Door, 0)
	for rows.Next() {
		var d domain.Door
		if err := rows.Scan(
			&d.ID,
			&d.DockID,
			&d.DoorGroupID,
			&d.Name,
			&d.Active,
			&d.MinUnitCount,
			&d.MaxUnitCount,
			&d.Priority,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan door: %v", ErrScanRow, op, err)
		}
		doors = append(doors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return doors, nil
}

func (r *Repository) listDocks(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]domain.Dock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	docks := make([]domain.Dock, 0)
	for rows.Next() {
		var d domain.Dock
		var cutoff sql.NullString
		var limits [6]sql.NullInt64

		if err := rows.Scan(
			&d.ID,
			&d.SiteID,
			&d.Name,
			&d.EarlyScheduleThreshold,
			&d.LateScheduleThreshold,
			&cutoff,
			&limits[0],
			&limits[1],
			&limits[2],
			&limits[3],
			&limits[4],
			&limits[5],
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan dock: %v", ErrScanRow, op, err)
		}

		if cutoff.Valid {
			d.ScheduleCutoffTime = types.TimeString(cutoff.String)
		}
		d.UnreservedApptsLimit = nullableInt(limits[0])
		d.ReservedApptsLimit = nullableInt(limits[1])
		d.UnreservedCasesLimit = nullableInt(limits[2])
		d.ReservedCasesLimit = nullableInt(limits[3])
		d.UnreservedPalletsLimit = nullableInt(limits[4])
		d.ReservedPalletsLimit = nullableInt(limits[5])

		docks = append(docks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return docks, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	value := v.Int64
	return &value
}
