package delete_master

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkoff/Salon-BookingService/internal/api/handlers"
	"github.com/avolkoff/Salon-BookingService/internal/service/masters"
)

const (
	msgInvalidMasterID       = "некорректный ID мастера"
	msgNotFound              = "мастер не найден"
	msgMasterHasAppointments = "у мастера есть будущие активные записи"
	msgMasterHasWorkSlots    = "у мастера есть будущие рабочие окна"
)

type Handler struct {
	service MasterService
	logger  Logger
}

func NewHandler(service MasterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/masters/{masterId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /masters/{id} - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	if err := h.service.Delete(r.Context(), masterID); err != nil {
		switch {
		case errors.Is(err, masters.ErrMasterNotFound):
			h.logger.Warn("DELETE /masters/{id} - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, masters.ErrMasterHasAppointments):
			h.logger.Warn("DELETE /masters/{id} - Master has future appointments: master_id=%d", masterID)
			handlers.RespondError(w, http.StatusConflict, msgMasterHasAppointments)

		case errors.Is(err, masters.ErrMasterHasWorkSlots):
			h.logger.Warn("DELETE /masters/{id} - Master has future work slots: master_id=%d", masterID)
			handlers.RespondError(w, http.StatusConflict, msgMasterHasWorkSlots)

		default:
			h.logger.Error("DELETE /masters/{id} - Failed: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /masters/{id} - Master deleted: master_id=%d", masterID)
	w.WriteHeader(http.StatusNoContent)
}
