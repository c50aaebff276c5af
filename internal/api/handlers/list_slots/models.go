package list_slots

import (
	"net/url"
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
}

// SlotListResponse HTTP response model списка слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// ParseFilter разбирает опциональные query параметры from/to (YYYY-MM-DD)
func ParseFilter(query url.Values) (domain.SlotFilter, error) {
	var filter domain.SlotFilter

	if from := query.Get("from"); from != "" {
		date, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return domain.SlotFilter{}, err
		}
		filter.FromDate = &date
	}
	if to := query.Get("to"); to != "" {
		date, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return domain.SlotFilter{}, err
		}
		filter.ToDate = &date
	}

	return filter, nil
}

// FromDomainSlots конвертирует доменные слоты в HTTP response
func FromDomainSlots(slots []*domain.Slot) *SlotListResponse {
	result := make([]SlotResponse, len(slots))
	for i, s := range slots {
		result[i] = SlotResponse{
			ID:          s.ID,
			Date:        s.Date.Format(domain.DateFormat),
			Time:        s.Time.String(),
			ServiceName: s.ServiceName,
			ClientName:  s.ClientName,
			ClientEmail: s.ClientEmail,
			Available:   s.IsAvailable(),
		}
	}
	return &SlotListResponse{Slots: result}
}
