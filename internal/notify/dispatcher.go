package notify

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	slotRepo "github.com/dsevbo/MBP-BookingService/internal/infra/storage/slot"
)

const (
	confirmationSubject = "Your Booking Confirmation"
	adminSubject        = "New Booking Received"
)

// Dispatcher рассылает письма о состоявшихся бронированиях.
// Подписан на событие BookingAssigned: письмо подтверждения клиенту
// и, если настроен адрес администратора, уведомление администратору.
// Сбои почтового транспорта логируются и глотаются: бронирование
// считается успешным даже без письма.
type Dispatcher struct {
	slots      SlotProvider
	mailer     Mailer
	adminEmail string
	fromName   string
	logger     Logger
}

// NewDispatcher создает диспетчер уведомлений.
// adminEmail может быть пустым, тогда админская копия не отправляется.
func NewDispatcher(slots SlotProvider, mailer Mailer, adminEmail, fromName string, logger Logger) *Dispatcher {
	return &Dispatcher{
		slots:      slots,
		mailer:     mailer,
		adminEmail: adminEmail,
		fromName:   fromName,
		logger:     logger,
	}
}

// BookingAssigned обрабатывает событие назначения слота
func (d *Dispatcher) BookingAssigned(ctx context.Context, slotID int64) error {
	slot, err := d.slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return fmt.Errorf("%w: id=%d", ErrSlotNotFound, slotID)
		}
		return fmt.Errorf("notify: fetch slot id=%d: %w", slotID, err)
	}

	if slot.ServiceName == nil || slot.ClientName == nil || slot.ClientEmail == nil {
		return fmt.Errorf("%w: id=%d", ErrSlotNotBooked, slotID)
	}

	// Адрес перепроверяется на момент отправки; некорректный адрес
	// прерывает отправку целиком
	if !domain.IsValidEmail(*slot.ClientEmail) {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, *slot.ClientEmail)
	}

	confirmation := Message{
		To:      *slot.ClientEmail,
		ToName:  *slot.ClientName,
		Subject: confirmationSubject,
		HTML:    d.confirmationBody(slot),
	}
	if err := d.mailer.Send(ctx, confirmation); err != nil {
		d.logger.Error("BookingAssigned: confirmation send failed for slot id=%d: %v", slotID, err)
	} else {
		d.logger.Info("BookingAssigned: confirmation sent for slot id=%d to %s", slotID, *slot.ClientEmail)
	}

	d.notifyAdmin(ctx, slot)

	return nil
}

// notifyAdmin отправляет уведомление администратору, если адрес настроен
func (d *Dispatcher) notifyAdmin(ctx context.Context, slot *domain.Slot) {
	if d.adminEmail == "" {
		return
	}
	if !domain.IsValidEmail(d.adminEmail) {
		d.logger.Error("BookingAssigned: invalid admin email address %q, skipping notification", d.adminEmail)
		return
	}

	msg := Message{
		To:      d.adminEmail,
		Subject: adminSubject,
		HTML:    d.adminBody(slot),
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		d.logger.Error("BookingAssigned: admin notification send failed for slot id=%d: %v", slot.ID, err)
		return
	}
	d.logger.Info("BookingAssigned: admin notification sent for slot id=%d to %s", slot.ID, d.adminEmail)
}

// confirmationBody собирает HTML письма подтверждения для клиента
func (d *Dispatcher) confirmationBody(slot *domain.Slot) string {
	return fmt.Sprintf(
		"Hello %s,<br><br>Thank you for your booking. Here are your booking details:<br>"+
			"Service: %s<br>Date: %s<br>Time: %s<br><br>Best regards,<br>%s.",
		html.EscapeString(*slot.ClientName),
		html.EscapeString(domain.ServiceLabel(*slot.ServiceName)),
		slot.Date.Format(domain.DateFormat),
		slot.Time,
		html.EscapeString(d.fromName),
	)
}

// adminBody собирает HTML уведомления для администратора
func (d *Dispatcher) adminBody(slot *domain.Slot) string {
	return fmt.Sprintf(
		"A new booking has been received:<br><br>"+
			"Service: %s<br>Date: %s<br>Time: %s<br>Client: %s<br>Email: %s",
		html.EscapeString(domain.ServiceLabel(*slot.ServiceName)),
		slot.Date.Format(domain.DateFormat),
		slot.Time,
		html.EscapeString(*slot.ClientName),
		html.EscapeString(*slot.ClientEmail),
	)
}
