package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	slotRepo "github.com/dsevbo/MBP-BookingService/internal/infra/storage/slot"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// Service административный сервис управления слотами
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create создает новый доступный слот.
// Поля назначения (услуга/клиент) никогда не заполняются при создании,
// результат всегда доступен для бронирования.
func (s *Service) Create(ctx context.Context, date time.Time, t types.TimeString) (*domain.Slot, error) {
	s.logger.Info("Create: creating slot date=%s time=%s", date.Format(domain.DateFormat), t)

	created, err := s.slotRepo.Create(ctx, date, t)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created slot id=%d", created.ID)
	return created, nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return slot, nil
}

// Update административное обновление полей слота.
// Обновляются только переданные поля. Если обновление затрагивает поля
// назначения, оно обязано дать полное корректное назначение: частично
// заполненное назначение не записывается никогда, операция падает до записи.
func (s *Service) Update(ctx context.Context, id int64, update domain.SlotUpdate) error {
	s.logger.Info("Update: updating slot id=%d", id)

	if update.IsEmpty() {
		s.logger.Warn("Update: empty update for slot id=%d", id)
		return ErrEmptyUpdate
	}

	if err := validateUpdate(update); err != nil {
		s.logger.Warn("Update: validation failed for slot id=%d: %v", id, err)
		return err
	}

	if err := s.slotRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated slot id=%d", id)
	return nil
}

// Delete удаляет слот
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting slot id=%d", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted slot id=%d", id)
	return nil
}

// List получает все слоты с опциональным фильтром по диапазону дат
func (s *Service) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(slots))
	return slots, nil
}

// validateUpdate проверяет корректность административного обновления
func validateUpdate(update domain.SlotUpdate) error {
	if update.ServiceName != nil && !domain.IsValidService(*update.ServiceName) {
		return ErrInvalidService
	}

	if update.TouchesAssignment() {
		if update.ServiceName == nil || update.ClientName == nil || update.ClientEmail == nil {
			return ErrPartialAssignment
		}

		var errs domain.ValidationErrors
		if *update.ClientName == "" {
			errs = append(errs, "Name is required.")
		}
		if !domain.IsValidEmail(*update.ClientEmail) {
			errs = append(errs, "Invalid email address.")
		}
		if len(errs) > 0 {
			return errs
		}
	}

	return nil
}
