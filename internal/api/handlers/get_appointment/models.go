package get_appointment

import (
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	ClientID     int64   `json:"clientId"`
	MasterID     int64   `json:"masterId"`
	WorkplaceID  int64   `json:"workplaceId"`
	ProcedureIDs []int64 `json:"procedureIds"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную запись в HTTP response
func FromDomain(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           appt.ID,
		ClientID:     appt.ClientID,
		MasterID:     appt.MasterID,
		WorkplaceID:  appt.WorkplaceID,
		ProcedureIDs: appt.Procedures,
		StartTime:    appt.StartTime.Format(domain.DateTimeFormat),
		EndTime:      appt.EndTime.Format(domain.DateTimeFormat),
		Status:       string(appt.Status),
		CreatedAt:    appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    appt.UpdatedAt.Format(time.RFC3339),
	}
}
