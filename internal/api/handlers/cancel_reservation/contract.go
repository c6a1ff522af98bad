package cancel_reservation

import "context"

type ReservationLedger interface {
	Cancel(ctx context.Context, reservationID, requesterID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
