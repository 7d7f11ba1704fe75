package converter

import (
	"carconnect/internal/domain/vehicle"
	sqlc "carconnect/internal/infra/sqlc/generated"
)

func VehicleToInfra(v *vehicle.Vehicle) sqlc.CreateVehicleParams {
	return sqlc.CreateVehicleParams{
		Make:               v.Make(),
		Model:              v.Model(),
		Year:               v.Year(),
		Color:              v.Color(),
		RegistrationNumber: v.RegistrationNumber(),
		Availability:       v.IsAvailable(),
		DailyRateCents:     v.DailyRate().Cents(),
	}
}

func VehicleFromInfra(row sqlc.Vehicles) *vehicle.Vehicle {
	return vehicle.ReconstructVehicle(row.ID, vehicle.Params{
		Make:               row.Make,
		Model:              row.Model,
		Year:               row.Year,
		Color:              row.Color,
		RegistrationNumber: row.RegistrationNumber,
		Availability:       row.Availability,
		DailyRateCents:     row.DailyRateCents,
	})
}
