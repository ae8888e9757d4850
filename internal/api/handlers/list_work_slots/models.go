package list_work_slots

import (
	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// WorkSlotResponse HTTP response model
type WorkSlotResponse struct {
	ID          int64  `json:"id"`
	MasterID    int64  `json:"masterId"`
	WorkplaceID int64  `json:"workplaceId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// WorkSlotListResponse HTTP response model списка рабочих окон
type WorkSlotListResponse struct {
	WorkSlots []*WorkSlotResponse `json:"workSlots"`
	Total     int                 `json:"total"`
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(slots []*domain.WorkSlot) *WorkSlotListResponse {
	out := make([]*WorkSlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, &WorkSlotResponse{
			ID:          slot.ID,
			MasterID:    slot.MasterID,
			WorkplaceID: slot.WorkplaceID,
			StartTime:   slot.StartTime.Format(domain.DateTimeFormat),
			EndTime:     slot.EndTime.Format(domain.DateTimeFormat),
		})
	}
	return &WorkSlotListResponse{
		WorkSlots: out,
		Total:     len(out),
	}
}
