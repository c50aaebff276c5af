package update_slot

import (
	"context"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
)

// SlotsService интерфейс административного сервиса слотов
type SlotsService interface {
	Update(ctx context.Context, id int64, update domain.SlotUpdate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
