package create_slot

import (
	"context"
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// SlotsService интерфейс административного сервиса слотов
type SlotsService interface {
	Create(ctx context.Context, date time.Time, t types.TimeString) (*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
