package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/infra/storage/memory"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/pricing"
	"github.com/MaximeC37/BikerBox-sub000/pkg/logger"
)

type mockStore struct {
	findByLockerFunc func(ctx context.Context, lockerID string) ([]*domain.Reservation, error)
}

func (m *mockStore) FindByLocker(ctx context.Context, lockerID string) ([]*domain.Reservation, error) {
	return m.findByLockerFunc(ctx, lockerID)
}

var start = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(store ReservationStore) *UseCase {
	catalog := memory.NewLockerCatalog(&domain.Locker{
		ID:   "paris-nord",
		Name: "Gare du Nord",
		Capacity: map[domain.LockerSize]int{
			domain.SizeSmall: 2,
			domain.SizeLarge: 1,
		},
	})
	return NewUseCase(catalog, store, pricing.NewCalculator(nil), logger.NewNop())
}

func TestExecute_ComputesPerSize(t *testing.T) {
	w := domain.NewTimeWindow(start, start.Add(72*time.Hour))
	store := &mockStore{findByLockerFunc: func(ctx context.Context, lockerID string) ([]*domain.Reservation, error) {
		return []*domain.Reservation{
			{LockerID: lockerID, Size: domain.SizeLarge, Window: w, Status: domain.StatusConfirmed},
			{LockerID: lockerID, Size: domain.SizeSmall, Window: domain.NewTimeWindow(start.Add(-time.Hour), start), Status: domain.StatusConfirmed},
		}, nil
	}}

	resp, err := newUseCase(store).Execute(context.Background(), &Request{LockerID: "paris-nord", Window: w})
	require.NoError(t, err)

	require.Len(t, resp.Sizes, 2)
	assert.Equal(t, SizeAvailability{Size: domain.SizeSmall, Total: 2, Remaining: 2, Available: true, Price: 16.2}, resp.Sizes[0])
	assert.Equal(t, SizeAvailability{Size: domain.SizeLarge, Total: 1, Remaining: 0, Available: false, Price: 37.8}, resp.Sizes[1])
}

func TestExecute_InvalidWindowHasNoAvailability(t *testing.T) {
	store := &mockStore{findByLockerFunc: func(ctx context.Context, lockerID string) ([]*domain.Reservation, error) {
		return nil, nil
	}}

	resp, err := newUseCase(store).Execute(context.Background(), &Request{
		LockerID: "paris-nord",
		Window:   domain.NewTimeWindow(start, start),
	})
	require.NoError(t, err)

	for _, s := range resp.Sizes {
		assert.Equal(t, 0, s.Remaining)
		assert.False(t, s.Available)
		assert.Equal(t, 0.0, s.Price)
	}
}

func TestExecute_Errors(t *testing.T) {
	okStore := &mockStore{findByLockerFunc: func(ctx context.Context, lockerID string) ([]*domain.Reservation, error) {
		return nil, nil
	}}
	failingStore := &mockStore{findByLockerFunc: func(ctx context.Context, lockerID string) ([]*domain.Reservation, error) {
		return nil, errors.New("connection refused")
	}}
	w := domain.NewTimeWindow(start, start.Add(time.Hour))

	_, err := newUseCase(okStore).Execute(context.Background(), &Request{LockerID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = newUseCase(okStore).Execute(context.Background(), &Request{LockerID: "lyon", Window: w})
	assert.ErrorIs(t, err, ErrLockerNotFound)

	_, err = newUseCase(failingStore).Execute(context.Background(), &Request{LockerID: "paris-nord", Window: w})
	assert.ErrorIs(t, err, ErrInternal)
}
