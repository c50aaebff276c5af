package assign_slot

import (
	"strings"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	assignSlot "github.com/dsevbo/MBP-BookingService/internal/usecase/assign_slot"
)

// AssignSlotRequest HTTP request model публичной формы бронирования
type AssignSlotRequest struct {
	SlotID      int64  `json:"booking_id"`
	ServiceName string `json:"service_name"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ServiceName string `json:"service_name"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case,
// обрезая пробелы во входных строках
func (r *AssignSlotRequest) ToUseCaseRequest() *assignSlot.Request {
	return &assignSlot.Request{
		SlotID:      r.SlotID,
		ServiceName: strings.TrimSpace(r.ServiceName),
		ClientName:  strings.TrimSpace(r.ClientName),
		ClientEmail: strings.TrimSpace(r.ClientEmail),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignSlot.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		ServiceName: resp.ServiceName,
		ClientName:  resp.ClientName,
		ClientEmail: resp.ClientEmail,
	}
}
