package get_available_days

import (
	"github.com/avolkoff/Salon-BookingService/internal/domain"
	getAvailableDays "github.com/avolkoff/Salon-BookingService/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	MasterID int64    `json:"masterId"`
	Days     []string `json:"days"` // "2026-09-14"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]string, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, d.Format(domain.DateFormat))
	}
	return &AvailableDaysResponse{
		MasterID: resp.MasterID,
		Days:     days,
	}
}
