package create_work_slot

import (
	"context"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

type WorkSlotService interface {
	Create(ctx context.Context, slot *domain.WorkSlot) (*domain.WorkSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
