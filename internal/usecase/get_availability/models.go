package get_availability

import "github.com/MaximeC37/BikerBox-sub000/internal/domain"

// Request модель запроса доступности ячейки на окно
type Request struct {
	LockerID string
	Window   domain.TimeWindow
}

// Response модель ответа с доступностью по размерам
type Response struct {
	Locker *domain.Locker
	Window domain.TimeWindow
	Sizes  []SizeAvailability // в порядке SMALL, MEDIUM, LARGE
}

// SizeAvailability доступность и цена одного размера
type SizeAvailability struct {
	Size      domain.LockerSize
	Total     int     // Общее количество ячеек
	Remaining int     // Свободно на окно
	Available bool    // Remaining > 0
	Price     float64 // Цена за окно
}
