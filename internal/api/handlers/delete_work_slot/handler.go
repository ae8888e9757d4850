package delete_work_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkoff/Salon-BookingService/internal/api/handlers"
	"github.com/avolkoff/Salon-BookingService/internal/service/workslots"
)

const (
	msgInvalidWorkSlotID   = "некорректный ID рабочего окна"
	msgNotFound            = "рабочее окно не найдено"
	msgSlotHasAppointments = "в рабочем окне есть активные записи"
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

// Handle DELETE /api/v1/work-slots/{workSlotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workSlotID, err := strconv.ParseInt(vars["workSlotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /work-slots/{id} - Invalid work slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), workSlotID); err != nil {
		switch {
		case errors.Is(err, workslots.ErrWorkSlotNotFound):
			h.logger.Warn("DELETE /work-slots/{id} - Work slot not found: work_slot_id=%d", workSlotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, workslots.ErrSlotHasAppointments):
			h.logger.Warn("DELETE /work-slots/{id} - Work slot has active appointments: work_slot_id=%d", workSlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotHasAppointments)

		default:
			h.logger.Error("DELETE /work-slots/{id} - Failed: work_slot_id=%d, error=%v", workSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /work-slots/{id} - Work slot deleted: work_slot_id=%d", workSlotID)
	w.WriteHeader(http.StatusNoContent)
}
