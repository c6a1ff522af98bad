package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

var base = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func window(d time.Duration) domain.TimeWindow {
	return domain.NewTimeWindow(base, base.Add(d))
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func TestCalculatePrice_NonPositiveWindowIsFree(t *testing.T) {
	calc := NewCalculator(nil)

	for _, size := range domain.AllSizes {
		assert.Equal(t, 0.0, calc.CalculatePrice(size, window(0)), size)
		assert.Equal(t, 0.0, calc.CalculatePrice(size, window(-5*time.Hour)), size)
	}
}

func TestCalculatePrice_UnderOneDayBillsOneDay(t *testing.T) {
	calc := NewCalculator(nil)

	assert.Equal(t, 6.0, calc.CalculatePrice(domain.SizeSmall, window(23*time.Hour)))
	assert.Equal(t, 10.0, calc.CalculatePrice(domain.SizeMedium, window(23*time.Hour)))
	assert.Equal(t, 14.0, calc.CalculatePrice(domain.SizeLarge, window(23*time.Hour)))
	assert.Equal(t, 6.0, calc.CalculatePrice(domain.SizeSmall, window(time.Minute)))
}

func TestCalculatePrice_Tiers(t *testing.T) {
	calc := NewCalculator(nil)

	tests := []struct {
		name     string
		size     domain.LockerSize
		duration time.Duration
		want     float64
	}{
		{"two days no discount", domain.SizeSmall, days(2), 12.0},
		{"partial day rounds up", domain.SizeSmall, days(2) + time.Hour, 16.2},
		{"three days 10%", domain.SizeSmall, days(3), 16.2},
		{"seven days 20%", domain.SizeMedium, days(7), 56.0},
		{"twenty nine days 20%", domain.SizeLarge, days(29), 324.8},
		{"thirty days 30%", domain.SizeLarge, days(30), 294.0},
		{"sixty days 30%", domain.SizeSmall, days(60), 252.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.CalculatePrice(tt.size, window(tt.duration)), 1e-9)
		})
	}
}

func TestDiscountRate_NotCumulative(t *testing.T) {
	assert.Equal(t, 0.0, DiscountRate(2))
	assert.Equal(t, 0.10, DiscountRate(3))
	assert.Equal(t, 0.10, DiscountRate(6))
	assert.Equal(t, 0.20, DiscountRate(7))
	assert.Equal(t, 0.20, DiscountRate(29))
	assert.Equal(t, 0.30, DiscountRate(30))
}

func TestBillableDays(t *testing.T) {
	assert.Equal(t, 0, BillableDays(window(0)))
	assert.Equal(t, 1, BillableDays(window(time.Second)))
	assert.Equal(t, 1, BillableDays(window(24*time.Hour)))
	assert.Equal(t, 2, BillableDays(window(24*time.Hour+time.Second)))
}

func TestNewCalculator_Overrides(t *testing.T) {
	calc := NewCalculator(map[domain.LockerSize]float64{
		domain.SizeSmall: 8.0,
		domain.SizeLarge: -1,
	})

	assert.Equal(t, 8.0, calc.BasePricePerDay(domain.SizeSmall))
	assert.Equal(t, domain.DefaultMediumPricePerDay, calc.BasePricePerDay(domain.SizeMedium))
	assert.Equal(t, domain.DefaultLargePricePerDay, calc.BasePricePerDay(domain.SizeLarge))
	assert.Equal(t, 0.0, calc.CalculatePrice(domain.LockerSize("XL"), window(days(2))))
}
