package readstore

import (
	"context"

	"carconnect/internal/infra"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
	"carconnect/internal/usecase/queries"
)

type VehicleViewQueries interface {
	GetVehicleByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Vehicles, error)
	GetVehicleDailyRate(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	ListVehicles(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vehicles, error)
	ListAvailableVehicles(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vehicles, error)
}

type VehicleReadStore struct {
	queries VehicleViewQueries
	db      sqlc.DBTX
}

func NewVehicleReadStore(queries VehicleViewQueries, db sqlc.DBTX) *VehicleReadStore {
	return &VehicleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VehicleReadStore) FindByID(ctx context.Context, id int64) (*queries.VehicleView, error) {
	row, err := r.queries.GetVehicleByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return toVehicleView(row), nil
}

// FindDailyRate returns the rate in cents.
func (r *VehicleReadStore) FindDailyRate(ctx context.Context, id int64) (int64, error) {
	cents, err := r.queries.GetVehicleDailyRate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to get vehicle daily rate", err)
	}
	return cents, nil
}

func (r *VehicleReadStore) FindAll(ctx context.Context) ([]*queries.VehicleView, error) {
	rows, err := r.queries.ListVehicles(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	return toVehicleViews(rows), nil
}

func (r *VehicleReadStore) FindAvailable(ctx context.Context) ([]*queries.VehicleView, error) {
	rows, err := r.queries.ListAvailableVehicles(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available vehicles", err)
	}
	return toVehicleViews(rows), nil
}

func toVehicleView(row sqlc.Vehicles) *queries.VehicleView {
	return &queries.VehicleView{
		ID:                 row.ID,
		Make:               row.Make,
		Model:              row.Model,
		Year:               row.Year,
		Color:              row.Color,
		RegistrationNumber: row.RegistrationNumber,
		Availability:       row.Availability,
		DailyRateCents:     row.DailyRateCents,
	}
}

func toVehicleViews(rows []sqlc.Vehicles) []*queries.VehicleView {
	result := make([]*queries.VehicleView, len(rows))
	for i, row := range rows {
		result[i] = toVehicleView(row)
	}
	return result
}
