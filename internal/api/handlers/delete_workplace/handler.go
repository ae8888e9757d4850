package delete_workplace

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkoff/Salon-BookingService/internal/api/handlers"
	"github.com/avolkoff/Salon-BookingService/internal/service/workplaces"
)

const (
	msgInvalidWorkplaceID = "некорректный ID рабочего места"
	msgNotFound           = "рабочее место не найдено"
)

// DeleteWorkplaceResponse HTTP response model: рабочее место с историей
// записей деактивируется вместо удаления
type DeleteWorkplaceResponse struct {
	Deactivated bool `json:"deactivated"`
}

type Handler struct {
	service WorkplaceService
	logger  Logger
}

func NewHandler(service WorkplaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/workplaces/{workplaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workplaceID, err := strconv.ParseInt(vars["workplaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /workplaces/{id} - Invalid workplace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkplaceID)
		return
	}

	deactivated, err := h.service.Delete(r.Context(), workplaceID)
	if err != nil {
		switch {
		case errors.Is(err, workplaces.ErrWorkplaceNotFound):
			h.logger.Warn("DELETE /workplaces/{id} - Workplace not found: workplace_id=%d", workplaceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /workplaces/{id} - Failed: workplace_id=%d, error=%v", workplaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if deactivated {
		h.logger.Info("DELETE /workplaces/{id} - Workplace deactivated: workplace_id=%d", workplaceID)
		handlers.RespondJSON(w, http.StatusOK, DeleteWorkplaceResponse{Deactivated: true})
		return
	}

	h.logger.Info("DELETE /workplaces/{id} - Workplace deleted: workplace_id=%d", workplaceID)
	w.WriteHeader(http.StatusNoContent)
}
