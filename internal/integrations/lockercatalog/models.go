package lockercatalog

import "github.com/MaximeC37/BikerBox-sub000/internal/domain"

// Locker модель ячейки из сервиса каталога
type Locker struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Capacity  map[string]int `json:"capacity"` // SMALL, MEDIUM, LARGE -> количество
}

// ToDomain конвертирует ответ каталога в domain модель
func (l *Locker) ToDomain() *domain.Locker {
	capacity := make(map[domain.LockerSize]int, len(l.Capacity))
	for size, count := range l.Capacity {
		capacity[domain.LockerSize(size)] = count
	}
	return &domain.Locker{
		ID:       l.ID,
		Name:     l.Name,
		Location: l.Location,
		Coordinates: domain.Coordinates{
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		},
		Capacity: capacity,
	}
}
