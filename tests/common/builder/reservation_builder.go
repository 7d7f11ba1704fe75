//go:build unit || e2e

package builder

import (
	"time"

	"carconnect/internal/domain/reservation"
	reqdto "carconnect/internal/handler/dto/request"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID             int64
	CustomerID     int64
	VehicleID      int64
	StartDate      time.Time
	EndDate        time.Time
	TotalCostCents int64
	Status         reservation.Status
}

// NewReservationBuilder describes a three day Pending rental at 50.00 a day.
func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:             1,
		CustomerID:     1,
		VehicleID:      1,
		StartDate:      start,
		EndDate:        start.Add(72 * time.Hour),
		TotalCostCents: 15000,
		Status:         reservation.StatusPending,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithCustomerID(id int64) *ReservationBuilder {
	r.CustomerID = id
	return r
}

func (r *ReservationBuilder) WithVehicleID(id int64) *ReservationBuilder {
	r.VehicleID = id
	return r
}

func (r *ReservationBuilder) WithPeriod(start, end time.Time) *ReservationBuilder {
	r.StartDate = start
	r.EndDate = end
	return r
}

func (r *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	r.Status = s
	return r
}

func (r *ReservationBuilder) WithTotalCostCents(cents int64) *ReservationBuilder {
	r.TotalCostCents = cents
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	period, err := reservation.NewPeriod(r.StartDate, r.EndDate)
	if err != nil {
		return nil, err
	}
	cost, err := reservation.NewMoney(r.TotalCostCents)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(r.CustomerID, r.VehicleID, period, cost, r.Status)
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:             r.ID,
		CustomerID:     r.CustomerID,
		VehicleID:      r.VehicleID,
		StartDate:      pgtype.Timestamptz{Time: r.StartDate, Valid: true},
		EndDate:        pgtype.Timestamptz{Time: r.EndDate, Valid: true},
		TotalCostCents: r.TotalCostCents,
		Status:         r.Status.String(),
	}
}

// BuildCreateRequestDTO leaves the total cost empty so the server prices it.
func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     r.Status.String(),
	}
}

func (r *ReservationBuilder) BuildPricedCreateRequestDTO() reqdto.CreateReservationRequest {
	req := r.BuildCreateRequestDTO()
	cost := r.TotalCostCents
	req.TotalCostCents = &cost
	return req
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             r.ID,
		CustomerID:     r.CustomerID,
		VehicleID:      r.VehicleID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TotalCostCents: r.TotalCostCents,
		Status:         r.Status.String(),
	}
}
