package assign_slot

import (
	"context"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Update(ctx context.Context, id int64, update domain.SlotUpdate) error
}

// Notifier получает событие успешного назначения слота.
// Вызывается синхронно после записи; ошибки нотификации
// не влияют на результат бронирования.
type Notifier interface {
	BookingAssigned(ctx context.Context, slotID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
