package get_slot

import (
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
)

// SlotResponse HTTP response model со всеми полями слота
type SlotResponse struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	ServiceName *string `json:"service_name,omitempty"`
	ClientName  *string `json:"client_name,omitempty"`
	ClientEmail *string `json:"client_email,omitempty"`
	Available   bool    `json:"available"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// FromDomainSlot конвертирует доменный слот в HTTP response
func FromDomainSlot(slot *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:          slot.ID,
		Date:        slot.Date.Format(domain.DateFormat),
		Time:        slot.Time.String(),
		ServiceName: slot.ServiceName,
		ClientName:  slot.ClientName,
		ClientEmail: slot.ClientEmail,
		Available:   slot.IsAvailable(),
		CreatedAt:   slot.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   slot.UpdatedAt.Format(time.RFC3339),
	}
}
