package lockers

import (
	"context"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// LockerCatalog каталог ячеек
// Для отсутствующей ячейки GetLocker возвращает nil, nil
type LockerCatalog interface {
	GetLocker(ctx context.Context, id string) (*domain.Locker, error)
	ListLockers(ctx context.Context) ([]*domain.Locker, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
