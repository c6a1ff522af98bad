package get_locker

import (
	"context"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

type LockerService interface {
	Get(ctx context.Context, lockerID string) (*domain.Locker, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
