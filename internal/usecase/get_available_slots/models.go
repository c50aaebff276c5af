package get_available_slots

import (
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	FromDate *time.Time // опциональная нижняя граница (date >= FromDate)
	ToDate   *time.Time // опциональная верхняя граница (date <= ToDate)
}

// Slot доступный для бронирования слот
type Slot struct {
	ID   int64
	Date time.Time
	Time types.TimeString
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Slots []Slot
}

// FromDomainSlots конвертирует доменные слоты в ответ use case
func FromDomainSlots(slots []*domain.Slot) *Response {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			ID:   s.ID,
			Date: s.Date,
			Time: s.Time,
		}
	}
	return &Response{Slots: result}
}
