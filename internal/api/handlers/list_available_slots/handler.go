package list_available_slots

import (
	"errors"
	"net/http"

	"github.com/dsevbo/MBP-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/dsevbo/MBP-BookingService/internal/usecase/get_available_slots"
)

const msgInvalidDateRange = "invalid date range, expected YYYY-MM-DD"

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /slots/available - Invalid date range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidDateRange) {
			h.logger.Warn("GET /slots/available - Invalid date range")
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		h.logger.Error("GET /slots/available - Failed to list available slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
