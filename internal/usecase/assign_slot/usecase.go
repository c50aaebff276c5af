package assign_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	slotRepo "github.com/dsevbo/MBP-BookingService/internal/infra/storage/slot"
)

// UseCase use case публичного бронирования слота.
//
// Назначение реализовано как слепое обновление существующей строки по ID:
// проверки занятости нет ни здесь, ни на уровне SQL. Два конкурентных
// бронирования одного слота оба завершатся успехом, второе молча перезапишет
// данные первого (last-write-wins). Это сохранённое поведение исходной
// системы, закреплённое тестами.
type UseCase struct {
	slotRepo SlotRepository
	notifier Notifier
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute выполняет бронирование слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignSlot: slot=%d, service=%s, client=%s", req.SlotID, req.ServiceName, req.ClientName)

	// 1. Валидация с накоплением всех ошибок
	if errs := validateRequest(req); len(errs) > 0 {
		uc.logger.Warn("AssignSlot: validation failed for slot=%d: %v", req.SlotID, errs)
		return nil, errs
	}

	// 2. Слот должен существовать
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("AssignSlot: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("AssignSlot: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if !slot.IsAvailable() {
		// Перезапись занятого слота разрешена, фиксируем только в логе
		uc.logger.Warn("AssignSlot: slot id=%d is already booked, overwriting", slot.ID)
	}

	// 3. Записываем все три поля назначения одним обновлением
	update := domain.SlotUpdate{
		ServiceName: &req.ServiceName,
		ClientName:  &req.ClientName,
		ClientEmail: &req.ClientEmail,
	}
	if err := uc.slotRepo.Update(ctx, req.SlotID, update); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("AssignSlot: slot id=%d disappeared before update", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("AssignSlot: failed to update slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
	}

	uc.logger.Info("AssignSlot: successfully assigned slot id=%d", slot.ID)

	// 4. Синхронно уведомляем подписчика; ошибки нотификации не откатывают
	// бронирование и не доходят до клиента
	if err := uc.notifier.BookingAssigned(ctx, slot.ID); err != nil {
		uc.logger.Error("AssignSlot: notification failed for slot id=%d: %v", slot.ID, err)
	}

	return FromDomainSlot(slot, req), nil
}
