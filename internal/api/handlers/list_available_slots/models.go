package list_available_slots

import (
	"net/url"
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	getAvailableSlots "github.com/dsevbo/MBP-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlot доступный для бронирования слот
type AvailableSlot struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Slots []AvailableSlot `json:"slots"`
}

// ToUseCaseRequest разбирает опциональные query параметры from/to
func ToUseCaseRequest(query url.Values) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{}

	if from := query.Get("from"); from != "" {
		date, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return nil, err
		}
		req.FromDate = &date
	}
	if to := query.Get("to"); to != "" {
		date, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return nil, err
		}
		req.ToDate = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:   s.ID,
			Date: s.Date.Format(domain.DateFormat),
			Time: s.Time.String(),
		}
	}
	return &AvailableSlotsResponse{Slots: slots}
}
