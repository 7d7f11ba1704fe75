package queries

import (
	"context"

	"carconnect/internal/pkg/errs"
	"carconnect/internal/usecase/shared"
)

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/queries/vehicle_mock.go -package=queriesmock

type VehicleReadStore interface {
	FindByID(ctx context.Context, id int64) (*VehicleView, error)
	FindDailyRate(ctx context.Context, id int64) (int64, error)
	FindAll(ctx context.Context) ([]*VehicleView, error)
	FindAvailable(ctx context.Context) ([]*VehicleView, error)
}

type VehicleQueries interface {
	GetAll(ctx context.Context) ([]*VehicleView, error)
	GetByID(ctx context.Context, id int64) (*VehicleView, error)
	GetAvailable(ctx context.Context) ([]*VehicleView, error)
}

var vehicleErrors = shared.ErrorMessages{NotFound: "vehicle not found"}

type vehicleQueriesImpl struct {
	readStore VehicleReadStore
}

func NewVehicleQueries(readStore VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{readStore: readStore}
}

func (q *vehicleQueriesImpl) GetAll(ctx context.Context) ([]*VehicleView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, vehicleErrors.Translate(err)
	}
	if len(views) == 0 {
		return nil, errs.MarkNew(errs.ErrNotFound, "no vehicles found")
	}
	return views, nil
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id int64) (*VehicleView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, vehicleErrors.Translate(err)
	}
	return view, nil
}

func (q *vehicleQueriesImpl) GetAvailable(ctx context.Context) ([]*VehicleView, error) {
	views, err := q.readStore.FindAvailable(ctx)
	if err != nil {
		return nil, vehicleErrors.Translate(err)
	}
	if len(views) == 0 {
		return nil, errs.MarkNew(errs.ErrNotFound, "no available vehicles found")
	}
	return views, nil
}
