package get_available_days

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avolkoff/Salon-BookingService/internal/api/handlers"
	"github.com/avolkoff/Salon-BookingService/internal/domain"
	getAvailableDays "github.com/avolkoff/Salon-BookingService/internal/usecase/get_available_days"
)

const (
	msgInvalidMasterID  = "некорректный ID мастера"
	msgInvalidStartDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays      = "некорректное количество дней"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/available-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-days - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	req := &getAvailableDays.Request{MasterID: masterID}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /masters/{id}/available-days - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = startDate
	}

	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			h.logger.Warn("GET /masters/{id}/available-days - Invalid days count: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.DaysCount = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /masters/{id}/available-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /masters/{id}/available-days - Failed: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /masters/{id}/available-days - %d days for master_id=%d", len(result.Days), masterID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
