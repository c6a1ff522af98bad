package get_lockers

import (
	"context"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

type LockerService interface {
	List(ctx context.Context, size *domain.LockerSize) ([]*domain.Locker, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
