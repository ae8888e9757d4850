package workplaces

import (
	"context"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// WorkplaceRepository интерфейс репозитория рабочих мест
type WorkplaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Workplace, error)
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// CountByWorkplace считает все записи на рабочем месте, включая
	// отменённые и завершённые
	CountByWorkplace(ctx context.Context, workplaceID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
