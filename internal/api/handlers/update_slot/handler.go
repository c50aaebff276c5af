package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dsevbo/MBP-BookingService/internal/api/handlers"
	"github.com/dsevbo/MBP-BookingService/internal/domain"
	slotsService "github.com/dsevbo/MBP-BookingService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlotID      = "invalid slot id"
	msgInvalidDateTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgSlotNotFound       = "slot not found"
	msgInvalidService     = "Invalid service selected."
	msgPartialAssignment  = "service, name and email must be supplied together"
	msgEmptyUpdate        = "no fields to update"
	msgUpdated            = "Booking updated successfully"
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

// Handle PUT /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /slots/{slotId} - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/%d - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		h.logger.Warn("PUT /slots/%d - Failed to parse date/time: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	if err := h.service.Update(r.Context(), slotID, update); err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/%d - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrInvalidService):
			h.logger.Warn("PUT /slots/%d - Invalid service", slotID)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, slotsService.ErrPartialAssignment):
			h.logger.Warn("PUT /slots/%d - Partial assignment rejected", slotID)
			handlers.RespondBadRequest(w, msgPartialAssignment)

		case errors.Is(err, slotsService.ErrEmptyUpdate):
			h.logger.Warn("PUT /slots/%d - Empty update", slotID)
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		case errors.As(err, &verrs):
			h.logger.Warn("PUT /slots/%d - Validation failed: %v", slotID, verrs)
			handlers.RespondValidationErrors(w, verrs)

		default:
			h.logger.Error("PUT /slots/%d - Failed to update slot: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/%d - Slot updated successfully", slotID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgUpdated})
}
