package jobs

import (
	"context"
	"time"
)

// AppointmentService интерфейс сервиса записей
type AppointmentService interface {
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
