package procedure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	"github.com/avolkoff/Salon-BookingService/pkg/dbmetrics"
	"github.com/avolkoff/Salon-BookingService/pkg/psqlbuilder"
)

var procedureColumns = []string{
	"id",
	"section_id",
	"duration",
	"base_price",
	"discount",
}

// Repository репозиторий для чтения процедур.
// Slot engine использует процедуры только на чтение: CRUD процедур
// живет в админском контуре.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория процедур
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает процедуру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(procedureColumns...).
		From("procedure").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var proc domain.Procedure
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&proc.ID,
		&proc.SectionID,
		&proc.Duration,
		&proc.BasePrice,
		&proc.Discount,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProcedureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan procedure: %v", ErrScanRow, err)
	}

	return &proc, nil
}

// GetByIDs получает процедуры по списку ID. Отсутствующие ID молча
// пропускаются — вызывающая сторона сравнивает длины и решает,
// что делать с пропусками.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Procedure, error) {
	if len(ids) == 0 {
		return []*domain.Procedure{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(procedureColumns...).
		From("procedure").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	procedures := make([]*domain.Procedure, 0, len(ids))
	for rows.Next() {
		var proc domain.Procedure
		err := rows.Scan(
			&proc.ID,
			&proc.SectionID,
			&proc.Duration,
			&proc.BasePrice,
			&proc.Discount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		procedures = append(procedures, &proc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return procedures, nil
}
