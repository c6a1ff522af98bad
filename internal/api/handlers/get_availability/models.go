package get_availability

import (
	"time"

	"github.com/MaximeC37/BikerBox-sub000/internal/api/handlers"
	getAvailability "github.com/MaximeC37/BikerBox-sub000/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Locker *handlers.LockerResponse `json:"locker"`
	Start  string                   `json:"start"`
	End    string                   `json:"end"`
	Sizes  []SizeAvailability       `json:"sizes"`
}

// SizeAvailability доступность одного размера
type SizeAvailability struct {
	Size      string  `json:"size"`
	Total     int     `json:"total"`
	Remaining int     `json:"remaining"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	sizes := make([]SizeAvailability, 0, len(resp.Sizes))
	for _, s := range resp.Sizes {
		sizes = append(sizes, SizeAvailability{
			Size:      s.Size.String(),
			Total:     s.Total,
			Remaining: s.Remaining,
			Available: s.Available,
			Price:     s.Price,
		})
	}

	return &AvailabilityResponse{
		Locker: handlers.FromLocker(resp.Locker),
		Start:  resp.Window.Start.Format(time.RFC3339),
		End:    resp.Window.End.Format(time.RFC3339),
		Sizes:  sizes,
	}
}
