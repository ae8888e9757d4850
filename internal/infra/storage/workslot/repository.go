package workslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	"github.com/avolkoff/Salon-BookingService/pkg/dbmetrics"
	"github.com/avolkoff/Salon-BookingService/pkg/psqlbuilder"
)

var workSlotColumns = []string{
	"id",
	"master_id",
	"workplace_id",
	"start_time",
	"end_time",
}

// Repository репозиторий для работы с рабочими слотами мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый рабочий слот
func (r *Repository) Create(ctx context.Context, slot *domain.WorkSlot) (*domain.WorkSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("work_slot").
		Columns("master_id", "workplace_id", "start_time", "end_time").
		Values(slot.MasterID, slot.WorkplaceID, slot.StartTime, slot.EndTime).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// GetByID получает рабочий слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WorkSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workSlotColumns...).
		From("work_slot").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.WorkSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.MasterID,
		&slot.WorkplaceID,
		&slot.StartTime,
		&slot.EndTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWorkSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan work slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// ListWithFilter получает рабочие слоты с фильтрацией по мастеру и периоду,
// отсортированные по времени начала
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.WorkSlotsFilter) ([]*domain.WorkSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(workSlotColumns...).
		From("work_slot")

	if filter.MasterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"master_id": *filter.MasterID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"end_time": *filter.EndDate})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWorkSlots(rows)
}

// ListByMasterAndDay получает рабочие слоты мастера, целиком лежащие
// внутри указанного календарного дня, отсортированные по времени начала
func (r *Repository) ListByMasterAndDay(ctx context.Context, masterID int64, day time.Time) ([]*domain.WorkSlot, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	return r.ListWithFilter(ctx, domain.WorkSlotsFilter{
		MasterID:  &masterID,
		StartDate: &startOfDay,
		EndDate:   &endOfDay,
	})
}

// ListStartingBetween получает рабочие слоты мастера, начинающиеся
// в полуинтервале [from, to). Используется агрегатором доступных дней.
func (r *Repository) ListStartingBetween(ctx context.Context, masterID int64, from, to time.Time) ([]*domain.WorkSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workSlotColumns...).
		From("work_slot").
		Where(squirrel.Eq{"master_id": masterID}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStartingBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStartingBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWorkSlots(rows)
}

// CountFutureByMaster подсчитывает рабочие слоты мастера, заканчивающиеся
// не раньше now. Используется guard-ом удаления мастера.
func (r *Repository) CountFutureByMaster(ctx context.Context, masterID int64, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("work_slot").
		Where(squirrel.Eq{"master_id": masterID}).
		Where(squirrel.GtOrEq{"end_time": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountFutureByMaster - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountFutureByMaster - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет границы и привязки рабочего слота
func (r *Repository) Update(ctx context.Context, slot *domain.WorkSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("work_slot").
		Set("master_id", slot.MasterID).
		Set("workplace_id", slot.WorkplaceID).
		Set("start_time", slot.StartTime).
		Set("end_time", slot.EndTime).
		Where(squirrel.Eq{"id": slot.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWorkSlotNotFound
	}

	return nil
}

// Delete удаляет рабочий слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("work_slot").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWorkSlotNotFound
	}

	return nil
}

// scanWorkSlots сканирует результаты запроса в слайс рабочих слотов
func scanWorkSlots(rows *sql.Rows) ([]*domain.WorkSlot, error) {
	slots := make([]*domain.WorkSlot, 0)

	for rows.Next() {
		var slot domain.WorkSlot
		err := rows.Scan(
			&slot.ID,
			&slot.MasterID,
			&slot.WorkplaceID,
			&slot.StartTime,
			&slot.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWorkSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWorkSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
