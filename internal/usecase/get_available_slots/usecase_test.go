package get_available_slots_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	"github.com/dsevbo/MBP-BookingService/internal/usecase/get_available_slots"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeSlotRepo отдает заранее подготовленный список и запоминает фильтр
type fakeSlotRepo struct {
	slots  []*domain.Slot
	err    error
	filter domain.SlotFilter
	calls  int
}

func (f *fakeSlotRepo) ListAvailable(_ context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	f.calls++
	f.filter = filter
	return f.slots, f.err
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no filter", func(t *testing.T) {
		repo := &fakeSlotRepo{slots: []*domain.Slot{
			{ID: 1, Date: date, Time: types.TimeString("10:00")},
			{ID: 2, Date: date, Time: types.TimeString("11:00")},
		}}
		uc := get_available_slots.NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &get_available_slots.Request{})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, int64(1), resp.Slots[0].ID)
		assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].Time)
		assert.Nil(t, repo.filter.FromDate)
		assert.Nil(t, repo.filter.ToDate)
	})

	t.Run("date range passed through", func(t *testing.T) {
		from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

		repo := &fakeSlotRepo{}
		uc := get_available_slots.NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &get_available_slots.Request{FromDate: &from, ToDate: &to})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		require.NotNil(t, repo.filter.FromDate)
		require.NotNil(t, repo.filter.ToDate)
		assert.Equal(t, from, *repo.filter.FromDate)
		assert.Equal(t, to, *repo.filter.ToDate)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		from := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		repo := &fakeSlotRepo{}
		uc := get_available_slots.NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &get_available_slots.Request{FromDate: &from, ToDate: &to})
		assert.ErrorIs(t, err, get_available_slots.ErrInvalidDateRange)
		assert.Zero(t, repo.calls)
	})

	t.Run("repository failure wrapped as internal", func(t *testing.T) {
		repo := &fakeSlotRepo{err: errors.New("connection reset")}
		uc := get_available_slots.NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &get_available_slots.Request{})
		assert.ErrorIs(t, err, get_available_slots.ErrInternal)
	})
}
