package reservation

import "time"

// Factory assembles new reservations, pricing them when the caller did not.
type Factory struct {
	CostCalculator CostCalculator
}

func NewFactory(costCalculator CostCalculator) *Factory {
	return &Factory{CostCalculator: costCalculator}
}

type Draft struct {
	CustomerID int64
	VehicleID  int64
	StartDate  time.Time
	EndDate    time.Time
	// nil means price from the vehicle's daily rate
	TotalCostCents *int64
	Status         string
}

// NeedsPricing reports whether Create will consult the daily rate.
func (d Draft) NeedsPricing() bool {
	return d.TotalCostCents == nil
}

func (f *Factory) Create(d Draft, dailyRate Money) (*Reservation, error) {
	period, err := NewPeriod(d.StartDate, d.EndDate)
	if err != nil {
		return nil, err
	}

	status, err := ParseStatusOrDefault(d.Status)
	if err != nil {
		return nil, err
	}

	var total Money
	if d.TotalCostCents != nil {
		total, err = NewMoney(*d.TotalCostCents)
		if err != nil {
			return nil, err
		}
	} else {
		total, err = f.CostCalculator.TotalCost(dailyRate, period.Start(), period.End())
		if err != nil {
			return nil, err
		}
	}

	return NewReservation(d.CustomerID, d.VehicleID, period, total, status)
}
