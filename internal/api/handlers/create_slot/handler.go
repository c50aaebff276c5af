package create_slot

import (
	"net/http"

	"github.com/dsevbo/MBP-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgCreateFailed       = "Failed to add booking"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, t, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	slot, err := h.service.Create(r.Context(), date, t)
	if err != nil {
		h.logger.Error("POST /slots - Failed to create slot: date=%s, time=%s, error=%v", req.Date, req.Time, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d", slot.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainSlot(slot))
}
