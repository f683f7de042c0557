package equipment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий ёмкостей оборудования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оборудования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBySite получает записи ёмкости оборудования площадки с покрываемыми
// группами дверей и доками
func (r *Repository) ListBySite(ctx context.Context, siteID int64) ([]domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"site_id",
		"equipment_type_id",
		"availability",
		"quantity",
	).
		From("equipment").
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySite - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySite - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	equipment := make([]domain.Equipment, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.SiteID, &e.EquipmentTypeID, &e.Availability, &e.Quantity); err != nil {
			return nil, fmt.Errorf("%w: ListBySite - scan equipment: %v", ErrScanRow, err)
		}
		equipment = append(equipment, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySite - rows error: %v", ErrScanRow, err)
	}

	if len(equipment) == 0 {
		return equipment, nil
	}

	index := make(map[int64]*domain.Equipment, len(equipment))
	for i := range equipment {
		index[equipment[i].ID] = &equipment[i]
	}

	if err := r.attachScopes(ctx, "equipment_door_groups", "door_group_id", ids, func(equipmentID, doorGroupID int64) {
		if e, ok := index[equipmentID]; ok {
			e.DoorGroupIDs = append(e.DoorGroupIDs, doorGroupID)
		}
	}); err != nil {
		return nil, err
	}
	if err := r.attachScopes(ctx, "equipment_docks", "dock_id", ids, func(equipmentID, dockID int64) {
		if e, ok := index[equipmentID]; ok {
			e.DockIDs = append(e.DockIDs, dockID)
		}
	}); err != nil {
		return nil, err
	}

	return equipment, nil
}

func (r *Repository) attachScopes(ctx context.Context, table, column string, ids []int64, apply func(equipmentID, id int64)) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("equipment_id", column).
		From(table).
		Where("equipment_id = ANY(?)", pq.Array(ids)).
		OrderBy("equipment_id ASC, " + column + " ASC").
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
		var equipmentID, id int64
		if err := rows.Scan(&equipmentID, &id); err != nil {
			return fmt.Errorf("%w: attachScopes(%s) - scan row: %v", ErrScanRow, table, err)
		}
		apply(equipmentID, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachScopes(%s) - rows error: %v", ErrScanRow, table, err)
	}

	return nil
}
