package notify

import (
	"context"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
)

// SlotProvider отдает слот по ID для подстановки деталей в письмо
type SlotProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// Mailer transports a single message. Implementations can be swapped
// (SendGrid, SMTP, stub) without changing the dispatcher.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message represents an email to be sent
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
