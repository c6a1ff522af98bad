package ledger

import "github.com/MaximeC37/BikerBox-sub000/internal/domain"

// CreateRequest запрос на создание бронирования
type CreateRequest struct {
	LockerID    string
	Size        domain.LockerSize
	Window      domain.TimeWindow
	RequesterID string
}
