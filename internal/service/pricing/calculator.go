package pricing

import (
	"math"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// Calculator рассчитывает стоимость аренды ячейки по размеру и временному окну
// Чистая функция без состояния, безопасна для конкурентного использования
type Calculator struct {
	basePrices map[domain.LockerSize]float64
}

// NewCalculator создает калькулятор с таблицей базовых цен за день
// Размеры, отсутствующие в overrides, берут значения по умолчанию
func NewCalculator(overrides map[domain.LockerSize]float64) *Calculator {
	prices := domain.DefaultBasePrices()
	for size, price := range overrides {
		if price < 0 {
			continue
		}
		prices[size] = price
	}
	return &Calculator{basePrices: prices}
}

// BasePricePerDay возвращает базовую цену за день для размера (0 для неизвестного размера)
func (c *Calculator) BasePricePerDay(size domain.LockerSize) float64 {
	return c.basePrices[size]
}

// CalculatePrice рассчитывает итоговую цену аренды
// Окно нулевой или отрицательной длительности стоит 0
func (c *Calculator) CalculatePrice(size domain.LockerSize, window domain.TimeWindow) float64 {
	days := BillableDays(window)
	if days == 0 {
		return 0.0
	}

	standardPrice := c.BasePricePerDay(size) * float64(days)
	return roundToCents(standardPrice * (1 - DiscountRate(days)))
}

// BillableDays возвращает количество оплачиваемых дней: ceil(часы / 24), минимум 1
// Для невалидного окна возвращает 0
func BillableDays(window domain.TimeWindow) int {
	hours := window.End.Sub(window.Start).Hours()
	if hours <= 0 {
		return 0
	}

	days := int(math.Ceil(hours / domain.HoursPerDay))
	if days < 1 {
		days = 1
	}
	return days
}

// DiscountRate возвращает скидку для количества оплачиваемых дней
// Скидки не суммируются, применяется только максимальный достигнутый уровень
func DiscountRate(days int) float64 {
	switch {
	case days >= domain.LongTermDays:
		return domain.LongTermDiscount
	case days >= domain.WeeklyDays:
		return domain.WeeklyDiscount
	case days >= domain.ShortTermDays:
		return domain.ShortTermDiscount
	default:
		return 0
	}
}

// roundToCents округляет до 2 знаков, половина округляется от нуля
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
