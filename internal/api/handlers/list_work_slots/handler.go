package list_work_slots

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avolkoff/Salon-BookingService/internal/api/handlers"
	"github.com/avolkoff/Salon-BookingService/internal/domain"
)

const (
	msgInvalidMasterID = "некорректный ID мастера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service WorkSlotService
	logger  Logger
}

func NewHandler(service WorkSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/work-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter domain.WorkSlotsFilter

	if raw := query.Get("master_id"); raw != "" {
		masterID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /work-slots - Invalid master ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidMasterID)
			return
		}
		filter.MasterID = &masterID
	}

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /work-slots - Invalid start date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = &startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /work-slots - Invalid end date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		// Верхняя граница включает весь день
		endOfDay := endDate.Add(24*time.Hour - time.Second)
		filter.EndDate = &endOfDay
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /work-slots - Failed to list work slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}
