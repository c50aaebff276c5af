package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	slotRepo "github.com/dsevbo/MBP-BookingService/internal/infra/storage/slot"
	"github.com/dsevbo/MBP-BookingService/internal/notify"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSlotProvider struct {
	slot *domain.Slot
	err  error
}

func (f *fakeSlotProvider) GetByID(_ context.Context, _ int64) (*domain.Slot, error) {
	return f.slot, f.err
}

type fakeMailer struct {
	sent []notify.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg notify.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func strPtr(s string) *string { return &s }

func bookedSlot() *domain.Slot {
	return &domain.Slot{
		ID:          7,
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:        types.TimeString("10:00"),
		ServiceName: strPtr(domain.ServicePsychosomatics),
		ClientName:  strPtr("Ana <b>"),
		ClientEmail: strPtr("ana@example.com"),
	}
}

func TestDispatcher_BookingAssigned(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmation only when admin email is empty", func(t *testing.T) {
		mailer := &fakeMailer{}
		d := notify.NewDispatcher(&fakeSlotProvider{slot: bookedSlot()}, mailer, "", "Booking Service", nopLogger{})

		require.NoError(t, d.BookingAssigned(ctx, 7))
		require.Len(t, mailer.sent, 1)

		msg := mailer.sent[0]
		assert.Equal(t, "ana@example.com", msg.To)
		assert.Equal(t, "Ana <b>", msg.ToName)
		assert.Equal(t, "Your Booking Confirmation", msg.Subject)
		// имя клиента экранируется в HTML тела
		assert.Contains(t, msg.HTML, "Hello Ana &lt;b&gt;,")
		assert.Contains(t, msg.HTML, "Service: Psychosomatics")
		assert.Contains(t, msg.HTML, "Date: 2024-06-01")
		assert.Contains(t, msg.HTML, "Time: 10:00")
		assert.Contains(t, msg.HTML, "Best regards,<br>Booking Service.")
	})

	t.Run("admin copy when configured", func(t *testing.T) {
		mailer := &fakeMailer{}
		d := notify.NewDispatcher(&fakeSlotProvider{slot: bookedSlot()}, mailer, "admin@example.com", "Booking Service", nopLogger{})

		require.NoError(t, d.BookingAssigned(ctx, 7))
		require.Len(t, mailer.sent, 2)

		adminCopy := mailer.sent[1]
		assert.Equal(t, "admin@example.com", adminCopy.To)
		assert.Equal(t, "New Booking Received", adminCopy.Subject)
		assert.Contains(t, adminCopy.HTML, "Email: ana@example.com")
	})

	t.Run("invalid recipient aborts before send", func(t *testing.T) {
		slot := bookedSlot()
		slot.ClientEmail = strPtr("Ana <ana@example.com>")

		mailer := &fakeMailer{}
		d := notify.NewDispatcher(&fakeSlotProvider{slot: slot}, mailer, "admin@example.com", "Booking Service", nopLogger{})

		err := d.BookingAssigned(ctx, 7)
		assert.ErrorIs(t, err, notify.ErrInvalidRecipient)
		assert.Empty(t, mailer.sent)
	})

	t.Run("slot without assignment", func(t *testing.T) {
		slot := bookedSlot()
		slot.ClientEmail = nil

		mailer := &fakeMailer{}
		d := notify.NewDispatcher(&fakeSlotProvider{slot: slot}, mailer, "", "Booking Service", nopLogger{})

		err := d.BookingAssigned(ctx, 7)
		assert.ErrorIs(t, err, notify.ErrSlotNotBooked)
		assert.Empty(t, mailer.sent)
	})

	t.Run("slot not found", func(t *testing.T) {
		d := notify.NewDispatcher(&fakeSlotProvider{err: slotRepo.ErrSlotNotFound}, &fakeMailer{}, "", "Booking Service", nopLogger{})

		err := d.BookingAssigned(ctx, 7)
		assert.ErrorIs(t, err, notify.ErrSlotNotFound)
	})

	t.Run("transport failure is swallowed", func(t *testing.T) {
		mailer := &fakeMailer{err: errors.New("sendgrid unavailable")}
		d := notify.NewDispatcher(&fakeSlotProvider{slot: bookedSlot()}, mailer, "admin@example.com", "Booking Service", nopLogger{})

		// сбой транспорта не считается сбоем события
		require.NoError(t, d.BookingAssigned(ctx, 7))
		// админская копия все равно отправляется после сбоя подтверждения
		assert.Len(t, mailer.sent, 2)
	})
}
