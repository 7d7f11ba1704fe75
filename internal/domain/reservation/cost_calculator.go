package reservation

import "time"

// CostCalculator prices a rental from the vehicle's daily rate.
type CostCalculator interface {
	TotalCost(dailyRate Money, start, end time.Time) (Money, error)
}

// DailyRateCostCalculator charges dailyRate for every whole day between start
// and end. Partial days are free and a non-positive span costs nothing. A
// total past the int64 cent range fails with ErrMoneyOverflow.
type DailyRateCostCalculator struct{}

func NewDailyRateCostCalculator() *DailyRateCostCalculator {
	return &DailyRateCostCalculator{}
}

func (DailyRateCostCalculator) TotalCost(dailyRate Money, start, end time.Time) (Money, error) {
	return dailyRate.Times(WholeDays(start, end))
}
