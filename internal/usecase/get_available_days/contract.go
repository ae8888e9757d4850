package get_available_days

import (
	"context"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// WorkSlotRepository интерфейс репозитория рабочих окон мастера
type WorkSlotRepository interface {
	// ListStartingBetween получает рабочие окна мастера, начинающиеся в [from, to)
	ListStartingBetween(ctx context.Context, masterID int64, from, to time.Time) ([]*domain.WorkSlot, error)
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
