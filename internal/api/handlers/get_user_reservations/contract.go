package get_user_reservations

import (
	"context"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

type ReservationLedger interface {
	ListForRequester(ctx context.Context, requesterID string) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
