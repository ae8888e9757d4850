package masters

import (
	"context"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	DeleteProcedureLinks(ctx context.Context, masterID int64) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// CountActiveFrom считает активные записи мастера, начинающиеся не раньше from
	CountActiveFrom(ctx context.Context, masterID int64, from time.Time) (int64, error)
}

// WorkSlotRepository интерфейс репозитория рабочих окон
type WorkSlotRepository interface {
	// CountFutureByMaster считает рабочие окна мастера, не закончившиеся к now
	CountFutureByMaster(ctx context.Context, masterID int64, now time.Time) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
