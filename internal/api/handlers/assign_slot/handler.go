package assign_slot

import (
	"errors"
	"net/http"

	"github.com/dsevbo/MBP-BookingService/internal/api/handlers"
	"github.com/dsevbo/MBP-BookingService/internal/domain"
	assignSlot "github.com/dsevbo/MBP-BookingService/internal/usecase/assign_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotFound       = "slot not found"
)

type Handler struct {
	useCase AssignSlotUseCase
	logger  Logger
}

func NewHandler(useCase AssignSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AssignSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /bookings - Validation failed: slot_id=%d, errors=%v", req.SlotID, verrs)
			handlers.RespondValidationErrors(w, verrs)

		case errors.Is(err, assignSlot.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to assign slot: slot_id=%d, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: slot_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
