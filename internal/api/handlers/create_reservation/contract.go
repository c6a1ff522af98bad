package create_reservation

import (
	"context"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/ledger"
)

type ReservationLedger interface {
	Create(ctx context.Context, req *ledger.CreateRequest) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
