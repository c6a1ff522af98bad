package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

var (
	// ErrDuplicateID возвращается при вставке бронирования с уже существующим ID
	ErrDuplicateID = errors.New("memory.reservations: duplicate reservation id")
)

// ReservationStore хранилище бронирований в памяти процесса
// Хранит копии, чтобы вызывающий код не мог изменить состояние в обход хранилища
type ReservationStore struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Reservation
	order []string
}

// NewReservationStore создает пустое хранилище
func NewReservationStore() *ReservationStore {
	return &ReservationStore{byID: make(map[string]*domain.Reservation)}
}

func (s *ReservationStore) FindByLocker(ctx context.Context, lockerID string) ([]*domain.Reservation, error) {
	return s.filter(func(r *domain.Reservation) bool { return r.LockerID == lockerID }), nil
}

// FindByRequester возвращает бронирования пользователя, последние по началу окна первыми
func (s *ReservationStore) FindByRequester(ctx context.Context, requesterID string) ([]*domain.Reservation, error) {
	result := s.filter(func(r *domain.Reservation) bool { return r.RequesterID == requesterID })
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Window.Start.After(result[j].Window.Start)
	})
	return result, nil
}

func (s *ReservationStore) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}

func (s *ReservationStore) Insert(ctx context.Context, reservation *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[reservation.ID]; ok {
		return ErrDuplicateID
	}

	c := *reservation
	s.byID[c.ID] = &c
	s.order = append(s.order, c.ID)
	return nil
}

func (s *ReservationStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false, nil
	}

	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Len возвращает количество бронирований
func (s *ReservationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *ReservationStore) filter(match func(r *domain.Reservation) bool) []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Reservation, 0)
	for _, id := range s.order {
		r := s.byID[id]
		if match(r) {
			c := *r
			result = append(result, &c)
		}
	}
	return result
}
