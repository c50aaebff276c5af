package slots

import (
	"context"
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, date time.Time, t types.TimeString) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Update(ctx context.Context, id int64, update domain.SlotUpdate) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
