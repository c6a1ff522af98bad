package handlers

import (
	"time"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// ReservationResponse HTTP модель бронирования
type ReservationResponse struct {
	ID         string  `json:"id"`
	LockerID   string  `json:"lockerId"`
	Size       string  `json:"size"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Status     string  `json:"status"`
	AccessCode string  `json:"accessCode"`
	Price      float64 `json:"price"`
	CreatedAt  string  `json:"createdAt"`
}

// FromReservation конвертирует доменное бронирование в HTTP модель
func FromReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		LockerID:   r.LockerID,
		Size:       r.Size.String(),
		Start:      r.Window.Start.Format(time.RFC3339),
		End:        r.Window.End.Format(time.RFC3339),
		Status:     string(r.Status),
		AccessCode: r.AccessCode,
		Price:      r.Price,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

// LockerResponse HTTP модель ячейки
type LockerResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Capacity  map[string]int `json:"capacity"`
}

// FromLocker конвертирует доменную ячейку в HTTP модель
func FromLocker(l *domain.Locker) *LockerResponse {
	capacity := make(map[string]int, len(l.Capacity))
	for _, size := range l.Sizes() {
		capacity[size.String()] = l.CapacityFor(size)
	}
	return &LockerResponse{
		ID:        l.ID,
		Name:      l.Name,
		Location:  l.Location,
		Latitude:  l.Coordinates.Latitude,
		Longitude: l.Coordinates.Longitude,
		Capacity:  capacity,
	}
}
