package slots_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
	slotRepo "github.com/dsevbo/MBP-BookingService/internal/infra/storage/slot"
	"github.com/dsevbo/MBP-BookingService/internal/service/slots"
	"github.com/dsevbo/MBP-BookingService/pkg/types"
)

// MockSlotRepository is a mock implementation of the SlotRepository interface
type MockSlotRepository struct {
	testifymock.Mock
}

func (m *MockSlotRepository) Create(ctx context.Context, date time.Time, t types.TimeString) (*domain.Slot, error) {
	args := m.Called(ctx, date, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) Update(ctx context.Context, id int64, update domain.SlotUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockSlotRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSlotRepository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Slot), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	repo := new(MockSlotRepository)
	repo.On("Create", ctx, date, types.TimeString("10:00")).
		Return(&domain.Slot{ID: 7, Date: date, Time: "10:00"}, nil)

	svc := slots.NewService(repo, nopLogger{})

	created, err := svc.Create(ctx, date, "10:00")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	// слот создаётся без назначения, всегда доступен
	assert.True(t, created.IsAvailable())

	repo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("reschedule", func(t *testing.T) {
		date := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		update := domain.SlotUpdate{Date: &date}

		repo := new(MockSlotRepository)
		repo.On("Update", ctx, int64(7), update).Return(nil)

		svc := slots.NewService(repo, nopLogger{})
		require.NoError(t, svc.Update(ctx, 7, update))

		repo.AssertExpectations(t)
	})

	t.Run("empty update", func(t *testing.T) {
		repo := new(MockSlotRepository)
		svc := slots.NewService(repo, nopLogger{})

		err := svc.Update(ctx, 7, domain.SlotUpdate{})
		assert.ErrorIs(t, err, slots.ErrEmptyUpdate)

		repo.AssertNotCalled(t, "Update")
	})

	t.Run("invalid service", func(t *testing.T) {
		repo := new(MockSlotRepository)
		svc := slots.NewService(repo, nopLogger{})

		err := svc.Update(ctx, 7, domain.SlotUpdate{
			ServiceName: strPtr("aromatherapy"),
			ClientName:  strPtr("Ana"),
			ClientEmail: strPtr("ana@example.com"),
		})
		assert.ErrorIs(t, err, slots.ErrInvalidService)

		repo.AssertNotCalled(t, "Update")
	})

	t.Run("partial assignment rejected before write", func(t *testing.T) {
		repo := new(MockSlotRepository)
		svc := slots.NewService(repo, nopLogger{})

		err := svc.Update(ctx, 7, domain.SlotUpdate{ClientName: strPtr("Ana")})
		assert.ErrorIs(t, err, slots.ErrPartialAssignment)

		repo.AssertNotCalled(t, "Update")
	})

	t.Run("assignment quality errors accumulate", func(t *testing.T) {
		repo := new(MockSlotRepository)
		svc := slots.NewService(repo, nopLogger{})

		err := svc.Update(ctx, 7, domain.SlotUpdate{
			ServiceName: strPtr(domain.ServiceEssentialOils),
			ClientName:  strPtr(""),
			ClientEmail: strPtr("not-an-email"),
		})

		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, domain.ValidationErrors{"Name is required.", "Invalid email address."}, verrs)

		repo.AssertNotCalled(t, "Update")
	})

	t.Run("full valid assignment", func(t *testing.T) {
		update := domain.SlotUpdate{
			ServiceName: strPtr(domain.ServicePsychosomatics),
			ClientName:  strPtr("Ana"),
			ClientEmail: strPtr("ana@example.com"),
		}

		repo := new(MockSlotRepository)
		repo.On("Update", ctx, int64(7), update).Return(nil)

		svc := slots.NewService(repo, nopLogger{})
		require.NoError(t, svc.Update(ctx, 7, update))

		repo.AssertExpectations(t)
	})

	t.Run("slot not found", func(t *testing.T) {
		update := domain.SlotUpdate{ClientName: strPtr("Ana"), ClientEmail: strPtr("ana@example.com"), ServiceName: strPtr(domain.ServiceEssentialOils)}

		repo := new(MockSlotRepository)
		repo.On("Update", ctx, int64(99), update).Return(slotRepo.ErrSlotNotFound)

		svc := slots.NewService(repo, nopLogger{})
		err := svc.Update(ctx, 99, update)
		assert.ErrorIs(t, err, slots.ErrSlotNotFound)

		repo.AssertExpectations(t)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo := new(MockSlotRepository)
		repo.On("Delete", ctx, int64(7)).Return(nil)

		svc := slots.NewService(repo, nopLogger{})
		require.NoError(t, svc.Delete(ctx, 7))

		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockSlotRepository)
		repo.On("Delete", ctx, int64(99)).Return(slotRepo.ErrSlotNotFound)

		svc := slots.NewService(repo, nopLogger{})
		assert.ErrorIs(t, svc.Delete(ctx, 99), slots.ErrSlotNotFound)

		repo.AssertExpectations(t)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		repo := new(MockSlotRepository)
		repo.On("GetByID", ctx, int64(99)).Return(nil, slotRepo.ErrSlotNotFound)

		svc := slots.NewService(repo, nopLogger{})
		_, err := svc.GetByID(ctx, 99)
		assert.ErrorIs(t, err, slots.ErrSlotNotFound)

		repo.AssertExpectations(t)
	})

	t.Run("repository failure wrapped as internal", func(t *testing.T) {
		repo := new(MockSlotRepository)
		repo.On("GetByID", ctx, int64(7)).Return(nil, errors.New("connection reset"))

		svc := slots.NewService(repo, nopLogger{})
		_, err := svc.GetByID(ctx, 7)
		assert.ErrorIs(t, err, slots.ErrInternal)

		repo.AssertExpectations(t)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	repo := new(MockSlotRepository)
	repo.On("List", ctx, domain.SlotFilter{}).Return([]*domain.Slot{
		{ID: 1, Date: date, Time: "10:00"},
		{ID: 2, Date: date, Time: "11:00", ServiceName: strPtr(domain.ServiceEssentialOils), ClientName: strPtr("Ana"), ClientEmail: strPtr("ana@example.com")},
	}, nil)

	svc := slots.NewService(repo, nopLogger{})

	got, err := svc.List(ctx, domain.SlotFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsAvailable())
	assert.True(t, got[1].IsBooked())

	repo.AssertExpectations(t)
}
