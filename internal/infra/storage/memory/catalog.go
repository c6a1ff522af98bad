package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// LockerCatalog каталог ячеек в памяти, заполняется из конфигурации
type LockerCatalog struct {
	mu      sync.RWMutex
	lockers map[string]*domain.Locker
}

// NewLockerCatalog создает каталог из списка ячеек
func NewLockerCatalog(lockers ...*domain.Locker) *LockerCatalog {
	c := &LockerCatalog{lockers: make(map[string]*domain.Locker, len(lockers))}
	for _, l := range lockers {
		c.Put(l)
	}
	return c
}

// Put добавляет или заменяет ячейку
func (c *LockerCatalog) Put(locker *domain.Locker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lockers[locker.ID] = cloneLocker(locker)
}

// GetLocker возвращает ячейку или nil, если ее нет
func (c *LockerCatalog) GetLocker(ctx context.Context, id string) (*domain.Locker, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	l, ok := c.lockers[id]
	if !ok {
		return nil, nil
	}
	return cloneLocker(l), nil
}

// ListLockers возвращает все ячейки, отсортированные по имени
func (c *LockerCatalog) ListLockers(ctx context.Context) ([]*domain.Locker, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*domain.Locker, 0, len(c.lockers))
	for _, l := range c.lockers {
		result = append(result, cloneLocker(l))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func cloneLocker(l *domain.Locker) *domain.Locker {
	c := *l
	c.Capacity = make(map[domain.LockerSize]int, len(l.Capacity))
	for size, count := range l.Capacity {
		c.Capacity[size] = count
	}
	return &c
}
