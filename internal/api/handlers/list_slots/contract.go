package list_slots

import (
	"context"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
)

// SlotsService интерфейс административного сервиса слотов
type SlotsService interface {
	List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
