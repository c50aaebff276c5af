package get_available_slots

import (
	"context"
	"fmt"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
)

// UseCase use case получения доступных слотов
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute возвращает слоты без назначения, опционально ограниченные
// диапазоном дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FromDate != nil && req.ToDate != nil && req.FromDate.After(*req.ToDate) {
		uc.logger.Warn("GetAvailableSlots: invalid range %s..%s",
			req.FromDate.Format(domain.DateFormat), req.ToDate.Format(domain.DateFormat))
		return nil, ErrInvalidDateRange
	}

	slots, err := uc.slotRepo.ListAvailable(ctx, domain.SlotFilter{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: fetched %d available slots", len(slots))
	return FromDomainSlots(slots), nil
}
