package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	"github.com/avolkoff/Salon-BookingService/pkg/dbmetrics"
	"github.com/avolkoff/Salon-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения клиентов. Slot engine читает
// клиента ради time_coeff и is_first_visit; CRUD клиентов живет
// в админском контуре.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"telegram_id",
		"name",
		"phone",
		"email",
		"time_coeff",
		"is_first_visit",
		"created_at",
		"updated_at",
	).
		From("client").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.TelegramID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.TimeCoeff,
		&c.IsFirstVisit,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
