package commands

import (
	"context"
	"log/slog"

	"carconnect/internal/domain/vehicle"
	reqdto "carconnect/internal/handler/dto/request"
	"carconnect/internal/usecase/shared"
)

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/commands/vehicle_mock.go -package=commandsmock

var vehicleErrors = shared.ErrorMessages{
	NotFound:  "vehicle not found",
	Conflict:  "a vehicle with this registration number already exists",
	Integrity: "vehicle is referenced by reservations",
}

type VehicleCommands interface {
	Add(ctx context.Context, req reqdto.AddVehicleRequest) (int64, error)
	UpdateByRegistration(ctx context.Context, registrationNumber string, req reqdto.UpdateVehicleRequest) error
	Remove(ctx context.Context, id int64) error
}

type vehicleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewVehicleCommands(uow shared.UnitOfWork) VehicleCommands {
	return &vehicleCommandsImpl{uow: uow}
}

func (v *vehicleCommandsImpl) Add(ctx context.Context, req reqdto.AddVehicleRequest) (int64, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return 0, shared.Validation(err)
	}

	var id int64
	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Vehicles().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return vehicleErrors.Translate(createErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("vehicle added", "vehicle_id", id, "registration_number", entity.RegistrationNumber())
	return id, nil
}

func (v *vehicleCommandsImpl) UpdateByRegistration(ctx context.Context, registrationNumber string, req reqdto.UpdateVehicleRequest) error {
	if req.Availability == nil || req.DailyRateCents == nil {
		return shared.Validation(vehicle.ErrMissingUpdateField)
	}
	rate, err := vehicle.NewDailyRate(*req.DailyRateCents)
	if err != nil {
		return shared.Validation(err)
	}

	return v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vehicles().UpdateByRegistration(ctx, tx.DB(), registrationNumber, *req.Availability, rate); err != nil {
			return vehicleErrors.Translate(err)
		}
		return nil
	})
}

func (v *vehicleCommandsImpl) Remove(ctx context.Context, id int64) error {
	return v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vehicles().Delete(ctx, tx.DB(), id); err != nil {
			return vehicleErrors.Translate(err)
		}
		return nil
	})
}
