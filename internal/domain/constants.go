package domain

// Default base prices per day, per size
const (
	DefaultSmallPricePerDay  = 6.0
	DefaultMediumPricePerDay = 10.0
	DefaultLargePricePerDay  = 14.0
)

// Discount tiers by billable days. Only the highest reached tier applies.
const (
	LongTermDays      = 30
	LongTermDiscount  = 0.30
	WeeklyDays        = 7
	WeeklyDiscount    = 0.20
	ShortTermDays     = 3
	ShortTermDiscount = 0.10
)

// HoursPerDay is the length of one billable day
const HoursPerDay = 24

// Access code format: one uppercase letter followed by AccessCodeDigits digits
const AccessCodeDigits = 3

// DefaultBasePrices returns a fresh copy of the default price table
func DefaultBasePrices() map[LockerSize]float64 {
	return map[LockerSize]float64{
		SizeSmall:  DefaultSmallPricePerDay,
		SizeMedium: DefaultMediumPricePerDay,
		SizeLarge:  DefaultLargePricePerDay,
	}
}
