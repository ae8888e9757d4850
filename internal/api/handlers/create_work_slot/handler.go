package create_work_slot

import (
	"errors"
	"net/http"

	"github.com/avolkoff/Salon-BookingService/internal/api/handlers"
	"github.com/avolkoff/Salon-BookingService/internal/service/workslots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DD HH:MM:SS"
	msgMasterNotFound     = "мастер не найден"
	msgWorkplaceNotFound  = "рабочее место не найдено"
	msgWorkplaceInactive  = "рабочее место деактивировано"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle POST /api/v1/work-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /work-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /work-slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	created, err := h.service.Create(r.Context(), slot)
	if err != nil {
		switch {
		case errors.Is(err, workslots.ErrMasterNotFound):
			h.logger.Warn("POST /work-slots - Master not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, workslots.ErrWorkplaceNotFound):
			h.logger.Warn("POST /work-slots - Workplace not found: workplace_id=%d", req.WorkplaceID)
			handlers.RespondNotFound(w, msgWorkplaceNotFound)

		case errors.Is(err, workslots.ErrWorkplaceInactive):
			h.logger.Warn("POST /work-slots - Workplace inactive: workplace_id=%d", req.WorkplaceID)
			handlers.RespondError(w, http.StatusConflict, msgWorkplaceInactive)

		case errors.Is(err, workslots.ErrInvalidInput):
			h.logger.Warn("POST /work-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /work-slots - Failed to create work slot: master_id=%d, error=%v", req.MasterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /work-slots - Work slot created: work_slot_id=%d, master_id=%d", created.ID, req.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}
