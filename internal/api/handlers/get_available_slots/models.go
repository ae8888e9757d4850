package get_available_slots

import (
	"github.com/avolkoff/Salon-BookingService/internal/domain"
	getAvailableSlots "github.com/avolkoff/Salon-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	MasterID        int64    `json:"masterId"`
	Date            string   `json:"date"`            // "2026-09-14"
	DurationMinutes int      `json:"durationMinutes"` // рассчитанная длительность записи
	Slots           []string `json:"slots"`           // "2026-09-14 09:00:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.Format(domain.DateTimeFormat))
	}
	return &AvailableSlotsResponse{
		MasterID:        resp.MasterID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
