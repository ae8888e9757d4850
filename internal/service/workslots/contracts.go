package workslots

import (
	"context"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// WorkSlotRepository интерфейс репозитория рабочих окон
type WorkSlotRepository interface {
	Create(ctx context.Context, slot *domain.WorkSlot) (*domain.WorkSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkSlot, error)
	ListWithFilter(ctx context.Context, filter domain.WorkSlotsFilter) ([]*domain.WorkSlot, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// CountActiveWithin считает неотменённые незавершённые записи мастера
	// внутри интервала [start, end)
	CountActiveWithin(ctx context.Context, masterID int64, start, end time.Time) (int64, error)
}

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
}

// WorkplaceRepository интерфейс репозитория рабочих мест
type WorkplaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Workplace, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
