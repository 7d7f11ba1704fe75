package queries

import (
	"context"
	"time"

	"carconnect/internal/domain/reservation"
	"carconnect/internal/infra"
	"carconnect/internal/usecase/shared"
)

//go:generate mockgen -source=cost.go -destination=../../../tests/mock/queries/cost_mock.go -package=queriesmock

type CostQueries interface {
	CalculateTotalCost(ctx context.Context, vehicleID int64, start, end time.Time) (reservation.Money, error)
}

type costQueriesImpl struct {
	vehicles   VehicleReadStore
	calculator reservation.CostCalculator
}

func NewCostQueries(vehicles VehicleReadStore, calculator reservation.CostCalculator) CostQueries {
	return &costQueriesImpl{vehicles: vehicles, calculator: calculator}
}

// CalculateTotalCost prices a rental from the vehicle's daily rate. An unknown
// vehicle costs zero rather than failing; a total too large to represent is a
// validation error.
func (q *costQueriesImpl) CalculateTotalCost(ctx context.Context, vehicleID int64, start, end time.Time) (reservation.Money, error) {
	cents, err := q.vehicles.FindDailyRate(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.Money{}, nil
		}
		return reservation.Money{}, vehicleErrors.Translate(err)
	}
	total, err := q.calculator.TotalCost(reservation.MustMoney(cents), start, end)
	if err != nil {
		return reservation.Money{}, shared.Validation(err)
	}
	return total, nil
}
