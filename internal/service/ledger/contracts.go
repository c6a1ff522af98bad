package ledger

import (
	"context"
	"time"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// LockerCatalog каталог ячеек (только чтение)
// Для отсутствующей ячейки возвращает nil, nil
type LockerCatalog interface {
	GetLocker(ctx context.Context, id string) (*domain.Locker, error)
}

// ReservationStore хранилище бронирований
// FindByID возвращает nil, nil для отсутствующего бронирования,
// DeleteByID возвращает false, если удалять нечего
type ReservationStore interface {
	FindByLocker(ctx context.Context, lockerID string) ([]*domain.Reservation, error)
	FindByRequester(ctx context.Context, requesterID string) ([]*domain.Reservation, error)
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	Insert(ctx context.Context, reservation *domain.Reservation) error
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// PriceCalculator калькулятор стоимости аренды
type PriceCalculator interface {
	CalculatePrice(size domain.LockerSize, window domain.TimeWindow) float64
}

// IdentityGenerator генератор идентификаторов и кодов доступа
type IdentityGenerator interface {
	NewReservationID() string
	NewAccessCode() string
}

// TransactionManager интерфейс для управления транзакциями
// Конфликт сериализации должен возвращаться как txmanager.ErrConflict
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock интерфейс для получения текущего времени (для тестирования)
type Clock interface {
	Now() time.Time
}

// Metrics счетчики исходов операций
type Metrics interface {
	ReservationOutcome(outcome string, size string)
	ReservationPrice(size string, price float64)
	LedgerRetry()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealClock реальный провайдер времени для production
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// NopMetrics используется, когда метрики выключены
type NopMetrics struct{}

func (NopMetrics) ReservationOutcome(string, string) {}
func (NopMetrics) ReservationPrice(string, float64) {}
func (NopMetrics) LedgerRetry() {}
