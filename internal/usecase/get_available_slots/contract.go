package get_available_slots

import (
	"context"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// WorkSlotRepository интерфейс репозитория рабочих окон мастера
type WorkSlotRepository interface {
	// ListByMasterAndDay получает все рабочие окна мастера на календарный день
	ListByMasterAndDay(ctx context.Context, masterID int64, day time.Time) ([]*domain.WorkSlot, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// DurationService интерфейс сервиса расчёта длительности записи
type DurationService interface {
	Calculate(ctx context.Context, procedureIDs []int64, timeCoeff float64, isFirstVisit bool) int
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
