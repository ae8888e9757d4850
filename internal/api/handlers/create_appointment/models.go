package create_appointment

import (
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/domain"
	createAppointment "github.com/avolkoff/Salon-BookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID     int64   `json:"clientId"`
	MasterID     int64   `json:"masterId"`
	WorkplaceID  int64   `json:"workplaceId"`
	ProcedureIDs []int64 `json:"procedureIds"`
	StartTime    string  `json:"startTime"`         // "2026-09-14 12:00:00"
	EndTime      *string `json:"endTime,omitempty"` // опционально, иначе начало + длительность
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		ClientID:     r.ClientID,
		MasterID:     r.MasterID,
		WorkplaceID:  r.WorkplaceID,
		ProcedureIDs: r.ProcedureIDs,
		StartTime:    startTime,
	}

	if r.EndTime != nil {
		endTime, err := time.Parse(domain.DateTimeFormat, *r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		ClientID:     resp.ClientID,
		MasterID:     resp.MasterID,
		WorkplaceID:  resp.WorkplaceID,
		ProcedureIDs: resp.ProcedureIDs,
		StartTime:    resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:      resp.EndTime.Format(domain.DateTimeFormat),
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
