package repository

import (
	"context"

	"carconnect/internal/domain/reservation"
	"carconnect/internal/domain/vehicle"
	"carconnect/internal/infra"
	"carconnect/internal/infra/repository/converter"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
)

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/repository/vehicle_mock.go -package=repositorymock

type VehicleWriteQueries interface {
	CreateVehicle(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVehicleParams) (int64, error)
	GetVehicleByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Vehicles, error)
	GetVehicleDailyRate(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	UpdateVehicleByRegistration(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVehicleByRegistrationParams) (int64, error)
	SetVehicleAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.SetVehicleAvailabilityParams) (int64, error)
	DeleteVehicle(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type VehicleRepository struct {
	queries VehicleWriteQueries
	db      sqlc.DBTX
}

func NewVehicleRepository(queries VehicleWriteQueries, db sqlc.DBTX) *VehicleRepository {
	return &VehicleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, tx sqlc.DBTX, v *vehicle.Vehicle) (int64, error) {
	id, err := r.queries.CreateVehicle(ctx, tx, converter.VehicleToInfra(v))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create vehicle", err)
	}
	return id, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*vehicle.Vehicle, error) {
	row, err := r.queries.GetVehicleByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return converter.VehicleFromInfra(row), nil
}

func (r *VehicleRepository) DailyRate(ctx context.Context, tx sqlc.DBTX, id int64) (reservation.Money, error) {
	cents, err := r.queries.GetVehicleDailyRate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return reservation.Money{}, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return reservation.Money{}, infra.WrapRepoErr("failed to get vehicle daily rate", err)
	}
	return reservation.MustMoney(cents), nil
}

func (r *VehicleRepository) UpdateByRegistration(ctx context.Context, tx sqlc.DBTX, registrationNumber string, available bool, dailyRate reservation.Money) error {
	n, err := r.queries.UpdateVehicleByRegistration(ctx, tx, sqlc.UpdateVehicleByRegistrationParams{
		RegistrationNumber: registrationNumber,
		Availability:       available,
		DailyRateCents:     dailyRate.Cents(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) SetAvailability(ctx context.Context, tx sqlc.DBTX, id int64, available bool) error {
	n, err := r.queries.SetVehicleAvailability(ctx, tx, sqlc.SetVehicleAvailabilityParams{
		ID:           id,
		Availability: available,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set vehicle availability", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteVehicle(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete vehicle", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
