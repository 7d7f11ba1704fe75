package converter

import (
	"carconnect/internal/domain/reservation"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	period := res.Period()
	return sqlc.CreateReservationParams{
		CustomerID:     res.CustomerID(),
		VehicleID:      res.VehicleID(),
		StartDate:      pgconv.TimeToPgtype(period.Start()),
		EndDate:        pgconv.TimeToPgtype(period.End()),
		TotalCostCents: res.TotalCost().Cents(),
		Status:         res.Status().String(),
	}
}
