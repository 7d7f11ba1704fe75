package readstore

import (
	"context"

	"carconnect/internal/infra"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
	"carconnect/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reservations, error)
	ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Reservations, error)
	ListReservationsByCustomerID(ctx context.Context, db sqlc.DBTX, customerID int64) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) FindByCustomerID(ctx context.Context, customerID int64) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByCustomerID(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer", err)
	}
	return toReservationViews(rows), nil
}

func toReservationView(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		VehicleID:      row.VehicleID,
		StartDate:      pgconv.TimeFromPgtype(row.StartDate),
		EndDate:        pgconv.TimeFromPgtype(row.EndDate),
		TotalCostCents: row.TotalCostCents,
		Status:         row.Status,
	}
}

func toReservationViews(rows []sqlc.Reservations) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result
}
