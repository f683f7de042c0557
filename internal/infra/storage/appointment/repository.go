package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DockSchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий встреч: сами встречи, их двери и заказы со строками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// blockingStatusStrings статусы, занимающие слот, в виде аргумента запроса
func blockingStatusStrings() []string {
	statuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// ListBlockingInWindow получает встречи площадки в блокирующих статусах, чьё
// фактическое окно (gate-in заменяет плановое начало) пересекает [from, to).
// Двери, заказы и строки заказов загружаются отдельными запросами по ID.
func (r *Repository) ListBlockingInWindow(ctx context.Context, siteID int64, from, to time.Time) ([]domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"site_id",
		"carrier_id",
		"start_time",
		"scheduled_duration",
		"gate_in_time",
		"gate_out_time",
		"status",
		"total_case_count",
		"total_pallet_count",
	).
		From("appointments").
		Where(squirrel.Eq{"site_id": siteID, "status": blockingStatusStrings()}).
		Where("COALESCE(gate_in_time, start_time) < ?", to).
		Where("COALESCE(gate_in_time, start_time) + scheduled_duration * interval '1 minute' > ?", from).
		OrderBy("start_time ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var a domain.Appointment
		var gateIn, gateOut sql.NullTime
		var pallets sql.NullInt64

		if err := rows.Scan(
			&a.ID,
			&a.SiteID,
			&a.CarrierID,
			&a.StartTime,
			&a.ScheduledDuration,
			&gateIn,
			&gateOut,
			&a.Status,
			&a.TotalCaseCount,
			&pallets,
		); err != nil {
			return nil, fmt.Errorf("%w: ListBlockingInWindow - scan appointment: %v", ErrScanRow, err)
		}

		if gateIn.Valid {
			t := gateIn.Time
			a.GateInTime = &t
		}
		if gateOut.Valid {
			t := gateOut.Time
			a.GateOutTime = &t
		}
		if pallets.Valid {
			count := int(pallets.Int64)
			a.TotalPalletCount = &count
		}

		appointments = append(appointments, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockingInWindow - rows error: %v", ErrScanRow, err)
	}

	if len(appointments) == 0 {
		return appointments, nil
	}

	if err := r.attachDoors(ctx, appointments, ids); err != nil {
		return nil, err
	}
	if err := r.attachOrders(ctx, appointments, ids); err != nil {
		return nil, err
	}

	return appointments, nil
}

// AnyBlockingOnDoors проверяет точечно, занята ли хотя бы одна из дверей
// блокирующей встречей в окне [from, to). Финальная перепроверка перед
// фиксацией брони: выполняется всегда против хранилища, не снапшота.
func (r *Repository) AnyBlockingOnDoors(ctx context.Context, siteID int64, doorIDs []int64, from, to time.Time, excludeID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("1").
		From("appointments a").
		Join("appointment_doors ad ON ad.appointment_id = a.id").
		Where(squirrel.Eq{"a.site_id": siteID, "a.status": blockingStatusStrings()}).
		Where("ad.door_id = ANY(?)", pq.Array(doorIDs)).
		Where("COALESCE(a.gate_in_time, a.start_time) < ?", to).
		Where("COALESCE(a.gate_in_time, a.start_time) + a.scheduled_duration * interval '1 minute' > ?", from).
		Limit(1)

	if excludeID != 0 {
		builder = builder.Where(squirrel.NotEq{"a.id": excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: AnyBlockingOnDoors - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: AnyBlockingOnDoors - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

func (r *Repository) attachDoors(ctx context.Context, appointments []domain.Appointment, ids []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("appointment_id", "door_id").
		From("appointment_doors").
		Where("appointment_id = ANY(?)", pq.Array(ids)).
		OrderBy("appointment_id ASC, door_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachDoors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachDoors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	index := make(map[int64]*domain.Appointment, len(appointments))
	for i := range appointments {
		index[appointments[i].ID] = &appointments[i]
	}

	for rows.Next() {
		var appointmentID, doorID int64
		if err := rows.Scan(&appointmentID, &doorID); err != nil {
			return fmt.Errorf("%w: attachDoors - scan row: %v", ErrScanRow, err)
		}
		if a, ok := index[appointmentID]; ok {
			a.DoorIDs = append(a.DoorIDs, doorID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachDoors - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) attachOrders(ctx context.Context, appointments []domain.Appointment, ids []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_id",
		"vendor_id",
		"due_date",
		"case_count",
		"pallet_count",
	).
		From("appointment_orders").
		Where("appointment_id = ANY(?)", pq.Array(ids)).
		OrderBy("appointment_id ASC, id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachOrders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachOrders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	index := make(map[int64]*domain.Appointment, len(appointments))
	for i := range appointments {
		index[appointments[i].ID] = &appointments[i]
	}

	for rows.Next() {
		var o domain.SlotOrder
		var appointmentID int64
		var dueDate sql.NullTime

		if err := rows.Scan(&o.ID, &appointmentID, &o.VendorID, &dueDate, &o.CaseCount, &o.PalletCount); err != nil {
			return fmt.Errorf("%w: attachOrders - scan order: %v", ErrScanRow, err)
		}
		if dueDate.Valid {
			t := dueDate.Time
			o.DueDate = &t
		}

		if a, ok := index[appointmentID]; ok {
			a.Orders = append(a.Orders, o)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachOrders - rows error: %v", ErrScanRow, err)
	}

	// Индекс строится после всех добавлений: указатели внутрь слайсов
	// валидны, только когда слайсы больше не растут
	orderIDs := make([]int64, 0)
	orderIndex := make(map[int64]*domain.SlotOrder)
	for i := range appointments {
		for j := range appointments[i].Orders {
			o := &appointments[i].Orders[j]
			orderIDs = append(orderIDs, o.ID)
			orderIndex[o.ID] = o
		}
	}

	if len(orderIDs) == 0 {
		return nil
	}
	return r.attachOrderDetails(ctx, orderIndex, orderIDs)
}

func (r *Repository) attachOrderDetails(ctx context.Context, orderIndex map[int64]*domain.SlotOrder, orderIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"order_id",
		"vendor_id",
		"rack_id",
		"case_count",
		"pallet_hi",
		"pallet_ti",
	).
		From("order_details").
		Where("order_id = ANY(?)", pq.Array(orderIDs)).
		OrderBy("order_id ASC, id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachOrderDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachOrderDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.OrderDetail
		var caseCount, hi, ti sql.NullInt64

		if err := rows.Scan(&d.ID, &d.OrderID, &d.VendorID, &d.RackID, &caseCount, &hi, &ti); err != nil {
			return fmt.Errorf("%w: attachOrderDetails - scan detail: %v", ErrScanRow, err)
		}

		if caseCount.Valid {
			v := int(caseCount.Int64)
			d.CaseCount = &v
		}
		if hi.Valid {
			v := int(hi.Int64)
			d.PalletHI = &v
		}
		if ti.Valid {
			v := int(ti.Int64)
			d.PalletTI = &v
		}

		if o, ok := orderIndex[d.OrderID]; ok {
			o.Details = append(o.Details, d)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachOrderDetails - rows error: %v", ErrScanRow, err)
	}

	return nil
}
