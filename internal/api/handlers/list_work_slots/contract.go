package list_work_slots

import (
	"context"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

type WorkSlotService interface {
	List(ctx context.Context, filter domain.WorkSlotsFilter) ([]*domain.WorkSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
