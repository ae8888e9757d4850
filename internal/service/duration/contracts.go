package duration

import (
	"context"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// ProcedureRepository интерфейс репозитория процедур
type ProcedureRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Procedure, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
