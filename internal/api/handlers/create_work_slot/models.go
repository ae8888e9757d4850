package create_work_slot

import (
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// CreateWorkSlotRequest HTTP request model
type CreateWorkSlotRequest struct {
	MasterID    int64  `json:"masterId"`
	WorkplaceID int64  `json:"workplaceId"`
	StartTime   string `json:"startTime"` // "2026-09-14 09:00:00"
	EndTime     string `json:"endTime"`   // "2026-09-14 18:00:00"
}

// WorkSlotResponse HTTP response model
type WorkSlotResponse struct {
	ID          int64  `json:"id"`
	MasterID    int64  `json:"masterId"`
	WorkplaceID int64  `json:"workplaceId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateWorkSlotRequest) ToDomain() (*domain.WorkSlot, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := time.Parse(domain.DateTimeFormat, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.WorkSlot{
		MasterID:    r.MasterID,
		WorkplaceID: r.WorkplaceID,
		StartTime:   startTime,
		EndTime:     endTime,
	}, nil
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(slot *domain.WorkSlot) *WorkSlotResponse {
	return &WorkSlotResponse{
		ID:          slot.ID,
		MasterID:    slot.MasterID,
		WorkplaceID: slot.WorkplaceID,
		StartTime:   slot.StartTime.Format(domain.DateTimeFormat),
		EndTime:     slot.EndTime.Format(domain.DateTimeFormat),
	}
}
