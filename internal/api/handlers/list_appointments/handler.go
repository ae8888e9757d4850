package list_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/api/handlers"
	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidMasterID = "некорректный ID мастера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter domain.AppointmentsFilter

	if raw := query.Get("client_id"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid client ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidClientID)
			return
		}
		filter.ClientID = &clientID
	}

	if raw := query.Get("master_id"); raw != "" {
		masterID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid master ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidMasterID)
			return
		}
		filter.MasterID = &masterID
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid from date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid to date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		// Верхняя граница включает весь день
		toEnd := to.Add(24*time.Hour - time.Second)
		filter.To = &toEnd
	}

	if query.Get("exclude_canceled") == "true" {
		filter.ExcludeCanceled = true
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}
