package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "CONFIRMED"
)

// Reservation represents a rented locker slot for a time window
type Reservation struct {
	ID          string
	LockerID    string
	RequesterID string
	Size        LockerSize
	Window      TimeWindow
	Status      ReservationStatus
	AccessCode  string
	Price       float64 // frozen at creation

	CreatedAt time.Time
}

// IsActive returns true if the reservation holds capacity
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// IsOwnedBy returns true if the reservation belongs to the requester
func (r *Reservation) IsOwnedBy(requesterID string) bool {
	return r.RequesterID == requesterID
}
