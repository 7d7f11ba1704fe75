package response

import (
	"time"

	"carconnect/internal/domain/reservation"
	"carconnect/internal/usecase/queries"
)

type ReservationResponse struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customer_id"`
	VehicleID      int64     `json:"vehicle_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	TotalCostCents int64     `json:"total_cost_cents"`
	Status         string    `json:"status"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	return mapOne[queries.ReservationView, ReservationResponse](v)
}

func FromReservationViews(vs []*queries.ReservationView) ([]ReservationResponse, error) {
	return mapAll[queries.ReservationView, ReservationResponse](vs)
}

type CostResponse struct {
	VehicleID      int64     `json:"vehicle_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	TotalCostCents int64     `json:"total_cost_cents"`
	TotalCost      string    `json:"total_cost"`
}

func NewCostResponse(vehicleID int64, start, end time.Time, cost reservation.Money) CostResponse {
	return CostResponse{
		VehicleID:      vehicleID,
		StartDate:      start,
		EndDate:        end,
		TotalCostCents: cost.Cents(),
		TotalCost:      cost.String(),
	}
}
