package get_quote

import "github.com/MaximeC37/BikerBox-sub000/internal/domain"

type PriceCalculator interface {
	BasePricePerDay(size domain.LockerSize) float64
	CalculatePrice(size domain.LockerSize, window domain.TimeWindow) float64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
