package assign_slot

import (
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID      int64  // ID существующего слота
	ServiceName string // Услуга из allow-list
	ClientName  string // Имя клиента
	ClientEmail string // Email клиента
}

// Response модель ответа с данными бронирования
type Response struct {
	ID          int64
	Date        time.Time
	Time        types.TimeString
	ServiceName string
	ClientName  string
	ClientEmail string
}

// FromDomainSlot собирает ответ из слота и данных назначения
func FromDomainSlot(slot *domain.Slot, req *Request) *Response {
	return &Response{
		ID:          slot.ID,
		Date:        slot.Date,
		Time:        slot.Time,
		ServiceName: req.ServiceName,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	}
}
