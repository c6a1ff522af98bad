package availability

import "github.com/MaximeC37/BikerBox-sub000/internal/domain"

// RemainingCapacity вычисляет количество свободных ячеек каждого размера на окно
// Для каждого размера из таблицы вместимости ячейки считаются так:
// свободно = max(0, вместимость - число пересекающихся активных бронирований этого размера)
//
// Пересечение считается по полуоткрытым интервалам: бронирование, которое заканчивается
// ровно в момент начала окна (или наоборот), НЕ занимает ячейку.
// Для невалидного окна (end <= start) все размеры получают 0.
func RemainingCapacity(
	locker *domain.Locker,
	window domain.TimeWindow,
	reservations []*domain.Reservation,
) map[domain.LockerSize]int {
	if locker == nil {
		return map[domain.LockerSize]int{}
	}

	result := make(map[domain.LockerSize]int, len(locker.Capacity))
	if !window.IsValid() {
		for size := range locker.Capacity {
			result[size] = 0
		}
		return result
	}

	occupied := countOverlapping(locker.ID, window, reservations)

	for size := range locker.Capacity {
		remaining := locker.CapacityFor(size) - occupied[size]
		if remaining < 0 {
			remaining = 0
		}
		result[size] = remaining
	}

	return result
}

// IsAvailable проверяет, что на окно есть хотя бы одна свободная ячейка указанного размера
// Размер, отсутствующий в таблице вместимости, недоступен
func IsAvailable(
	locker *domain.Locker,
	size domain.LockerSize,
	window domain.TimeWindow,
	reservations []*domain.Reservation,
) bool {
	return RemainingCapacity(locker, window, reservations)[size] > 0
}

// countOverlapping подсчитывает активные бронирования ячейки, пересекающиеся с окном, по размерам
func countOverlapping(
	lockerID string,
	window domain.TimeWindow,
	reservations []*domain.Reservation,
) map[domain.LockerSize]int {
	counts := make(map[domain.LockerSize]int)

	for _, r := range reservations {
		if r == nil || r.LockerID != lockerID || !r.IsActive() {
			continue
		}
		if r.Window.Overlaps(window) {
			counts[r.Size]++
		}
	}

	return counts
}
