package create_reservation

import (
	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
	"github.com/MaximeC37/BikerBox-sub000/internal/service/ledger"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	LockerID string `json:"lockerId" validate:"required,max=128"`
	Size     string `json:"size" validate:"required,locker_size"`
	Start    string `json:"start" validate:"required"` // "2025-07-01T10:00:00+02:00"
	End      string `json:"end" validate:"required"`
}

// ToLedgerRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateReservationRequest) ToLedgerRequest(requesterID string) (*ledger.CreateRequest, error) {
	window, err := handlers.ParseWindow(r.Start, r.End)
	if err != nil {
		return nil, err
	}

	return &ledger.CreateRequest{
		LockerID:    r.LockerID,
		Size:        domain.LockerSize(r.Size),
		Window:      window,
		RequesterID: requesterID,
	}, nil
}
