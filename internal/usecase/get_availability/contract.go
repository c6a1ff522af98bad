package get_availability

import (
	"context"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// LockerCatalog каталог ячеек
type LockerCatalog interface {
	GetLocker(ctx context.Context, id string) (*domain.Locker, error)
}

// ReservationStore хранилище бронирований
type ReservationStore interface {
	FindByLocker(ctx context.Context, lockerID string) ([]*domain.Reservation, error)
}

// PriceCalculator калькулятор стоимости аренды
type PriceCalculator interface {
	CalculatePrice(size domain.LockerSize, window domain.TimeWindow) float64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
