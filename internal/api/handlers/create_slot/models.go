package create_slot

import (
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date string `json:"date"` // "2024-06-01"
	Time string `json:"time"` // "10:00"
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
	CreatedAt string `json:"createdAt"`
}

// Parse валидирует и разбирает дату и время запроса
func (r *CreateSlotRequest) Parse() (time.Time, types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, "", err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return time.Time{}, "", err
	}

	return date, t, nil
}

// FromDomainSlot конвертирует доменный слот в HTTP response
func FromDomainSlot(slot *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:        slot.ID,
		Date:      slot.Date.Format(domain.DateFormat),
		Time:      slot.Time.String(),
		Available: slot.IsAvailable(),
		CreatedAt: slot.CreatedAt.Format(time.RFC3339),
	}
}
