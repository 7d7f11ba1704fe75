package request

import (
	"time"

	"carconnect/internal/domain/reservation"
)

type CreateReservationRequest struct {
	CustomerID int64     `json:"customer_id" binding:"required,min=1"`
	VehicleID  int64     `json:"vehicle_id" binding:"required,min=1"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	// Omitted: priced from the vehicle's daily rate
	TotalCostCents *int64 `json:"total_cost_cents,omitempty" binding:"omitempty,min=0"`
	Status         string `json:"status,omitempty"`
}

func (r CreateReservationRequest) ToDraft() reservation.Draft {
	return reservation.Draft{
		CustomerID:     r.CustomerID,
		VehicleID:      r.VehicleID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TotalCostCents: r.TotalCostCents,
		Status:         r.Status,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateReservationStatusRequest) ToDomain() (reservation.Status, error) {
	return reservation.ParseStatus(r.Status)
}

// Dates are RFC 3339, e.g. 2024-01-01T00:00:00Z.
type CostQuery struct {
	VehicleID int64     `form:"vehicleId" binding:"required,min=1"`
	StartDate time.Time `form:"startDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   time.Time `form:"endDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
