package response

import "carconnect/internal/usecase/queries"

type VehicleResponse struct {
	ID                 int64  `json:"id"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int32  `json:"year"`
	Color              string `json:"color"`
	RegistrationNumber string `json:"registration_number"`
	Availability       bool   `json:"availability"`
	DailyRateCents     int64  `json:"daily_rate_cents"`
}

func FromVehicleView(v *queries.VehicleView) (*VehicleResponse, error) {
	return mapOne[queries.VehicleView, VehicleResponse](v)
}

func FromVehicleViews(vs []*queries.VehicleView) ([]VehicleResponse, error) {
	return mapAll[queries.VehicleView, VehicleResponse](vs)
}
