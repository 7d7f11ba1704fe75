package request

import (
	"carconnect/internal/domain/vehicle"
)

type AddVehicleRequest struct {
	Make               string `json:"make" binding:"required,max=100"`
	Model              string `json:"model" binding:"required,max=100"`
	Year               int32  `json:"year" binding:"required,min=1"`
	Color              string `json:"color" binding:"max=100"`
	RegistrationNumber string `json:"registration_number" binding:"required,max=100"`
	Availability       *bool  `json:"availability,omitempty"`
	DailyRateCents     int64  `json:"daily_rate_cents" binding:"min=0"`
}

// ToDomain defaults availability to true for a newly added vehicle.
func (r *AddVehicleRequest) ToDomain() (*vehicle.Vehicle, error) {
	available := true
	if r.Availability != nil {
		available = *r.Availability
	}
	return vehicle.NewVehicle(vehicle.Params{
		Make:               r.Make,
		Model:              r.Model,
		Year:               r.Year,
		Color:              r.Color,
		RegistrationNumber: r.RegistrationNumber,
		Availability:       available,
		DailyRateCents:     r.DailyRateCents,
	})
}

type UpdateVehicleRequest struct {
	Availability   *bool  `json:"availability" binding:"required"`
	DailyRateCents *int64 `json:"daily_rate_cents" binding:"required,min=0"`
}
