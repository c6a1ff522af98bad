package get_availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/MaximeC37/BikerBox-sub000/internal/service/availability"
)

// UseCase use case для получения свободных ячеек и цен на окно
type UseCase struct {
	catalog LockerCatalog
	store   ReservationStore
	pricer  PriceCalculator
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog LockerCatalog,
	store ReservationStore,
	pricer PriceCalculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog: catalog,
		store:   store,
		pricer:  pricer,
		logger:  logger,
	}
}

// Execute выполняет use case получения доступности
// Невалидное окно не является ошибкой: все размеры получают 0 свободных ячеек
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.LockerID) == "" {
		return nil, fmt.Errorf("%w: lockerID is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailability: locker=%s, window=%s..%s", req.LockerID, req.Window.Start, req.Window.End)

	// 1. Получаем ячейку
	locker, err := uc.catalog.GetLocker(ctx, req.LockerID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get locker id=%s: %v", req.LockerID, err)
		return nil, fmt.Errorf("%w: failed to get locker: %v", ErrInternal, err)
	}
	if locker == nil {
		uc.logger.Warn("GetAvailability: locker id=%s not found", req.LockerID)
		return nil, ErrLockerNotFound
	}

	// 2. Получаем бронирования ячейки
	reservations, err := uc.store.FindByLocker(ctx, locker.ID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 3. Считаем остаток по размерам
	remaining := availability.RemainingCapacity(locker, req.Window, reservations)

	sizes := make([]SizeAvailability, 0, len(remaining))
	for _, size := range locker.Sizes() {
		sizes = append(sizes, SizeAvailability{
			Size:      size,
			Total:     locker.CapacityFor(size),
			Remaining: remaining[size],
			Available: remaining[size] > 0,
			Price:     uc.pricer.CalculatePrice(size, req.Window),
		})
	}

	uc.logger.Info("GetAvailability: computed %d sizes for locker=%s", len(sizes), locker.ID)

	return &Response{
		Locker: locker,
		Window: req.Window,
		Sizes:  sizes,
	}, nil
}
