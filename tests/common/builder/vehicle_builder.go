//go:build unit || e2e

package builder

import (
	"carconnect/internal/domain/vehicle"
	reqdto "carconnect/internal/handler/dto/request"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/usecase/queries"
)

type VehicleBuilder struct {
	ID                 int64
	Make               string
	Model              string
	Year               int32
	Color              string
	RegistrationNumber string
	Availability       bool
	DailyRateCents     int64
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		ID:                 1,
		Make:               "Toyota",
		Model:              "Corolla",
		Year:               2022,
		Color:              "White",
		RegistrationNumber: "ABC-1234",
		Availability:       true,
		DailyRateCents:     5000,
	}
}

func (v *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(v)
	return v
}

func (v *VehicleBuilder) WithRegistrationNumber(reg string) *VehicleBuilder {
	v.RegistrationNumber = reg
	return v
}

func (v *VehicleBuilder) WithDailyRateCents(cents int64) *VehicleBuilder {
	v.DailyRateCents = cents
	return v
}

func (v *VehicleBuilder) WithAvailability(available bool) *VehicleBuilder {
	v.Availability = available
	return v
}

func (v *VehicleBuilder) params() vehicle.Params {
	return vehicle.Params{
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		Color:              v.Color,
		RegistrationNumber: v.RegistrationNumber,
		Availability:       v.Availability,
		DailyRateCents:     v.DailyRateCents,
	}
}

func (v *VehicleBuilder) BuildDomain() (*vehicle.Vehicle, error) {
	return vehicle.NewVehicle(v.params())
}

func (v *VehicleBuilder) BuildStored() *vehicle.Vehicle {
	return vehicle.ReconstructVehicle(v.ID, v.params())
}

func (v *VehicleBuilder) BuildInfra() sqlc.Vehicles {
	return sqlc.Vehicles{
		ID:                 v.ID,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		Color:              v.Color,
		RegistrationNumber: v.RegistrationNumber,
		Availability:       v.Availability,
		DailyRateCents:     v.DailyRateCents,
	}
}

func (v *VehicleBuilder) BuildAddRequestDTO() reqdto.AddVehicleRequest {
	available := v.Availability
	return reqdto.AddVehicleRequest{
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		Color:              v.Color,
		RegistrationNumber: v.RegistrationNumber,
		Availability:       &available,
		DailyRateCents:     v.DailyRateCents,
	}
}

func (v *VehicleBuilder) BuildUpdateRequestDTO() reqdto.UpdateVehicleRequest {
	available := v.Availability
	rate := v.DailyRateCents
	return reqdto.UpdateVehicleRequest{
		Availability:   &available,
		DailyRateCents: &rate,
	}
}

func (v *VehicleBuilder) BuildView() *queries.VehicleView {
	return &queries.VehicleView{
		ID:                 v.ID,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		Color:              v.Color,
		RegistrationNumber: v.RegistrationNumber,
		Availability:       v.Availability,
		DailyRateCents:     v.DailyRateCents,
	}
}
