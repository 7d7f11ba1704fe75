package commands

import (
	"context"
	"log/slog"
	"time"

	"carconnect/internal/domain/auth"
	"carconnect/internal/domain/reservation"
	reqdto "carconnect/internal/handler/dto/request"
	"carconnect/internal/infra"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

var reservationErrors = shared.ErrorMessages{
	NotFound:  "reservation not found",
	Integrity: "customer or vehicle does not exist",
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, actor auth.Principal) (int64, error)
	UpdateStatus(ctx context.Context, id int64, req reqdto.UpdateReservationStatusRequest) error
	Cancel(ctx context.Context, id int64, actor auth.Principal) error
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
	}
}

// Create stores a new reservation, pricing it from the vehicle's daily rate
// when the request carries no total. A missing vehicle prices at zero and then
// fails the insert on the foreign key.
func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest, actor auth.Principal) (int64, error) {
	if !actor.IsAdmin() && req.CustomerID != actor.ID {
		return 0, errs.MarkNew(errs.ErrForbidden, "customers may only book for themselves")
	}

	draft := req.ToDraft()
	var id int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var rate reservation.Money
		if draft.NeedsPricing() {
			var err error
			rate, err = tx.Vehicles().DailyRate(ctx, tx.DB(), draft.VehicleID)
			if err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return reservationErrors.Translate(err)
			}
		}

		res, err := r.factory.Create(draft, rate)
		if err != nil {
			return shared.Validation(err)
		}

		id, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return reservationErrors.Translate(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("reservation created", "reservation_id", id, "customer_id", draft.CustomerID, "vehicle_id", draft.VehicleID)
	return id, nil
}

// UpdateStatus overwrites the status without checking the transition.
func (r *reservationCommandsImpl) UpdateStatus(ctx context.Context, id int64, req reqdto.UpdateReservationStatusRequest) error {
	status, err := req.ToDomain()
	if err != nil {
		return shared.Validation(err)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, status); err != nil {
			return reservationErrors.Translate(err)
		}
		return nil
	})
}

// Cancel locks the reservation row, moves it to Cancelled and frees the
// vehicle. Both writes commit together or not at all.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, id int64, actor auth.Principal) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lock, err := tx.Reservations().LockForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return reservationErrors.Translate(err)
		}
		if !actor.IsAdmin() && lock.CustomerID != actor.ID {
			return errs.MarkNew(errs.ErrForbidden, "reservation belongs to another customer")
		}

		if _, err := reservation.CheckCancellable(lock.Status); err != nil {
			if errs.Is(err, reservation.ErrCorruptedStatus) {
				return errs.MarkCause(err, errs.ErrCorruptedState, "reservation %d has unrecognized status %q", id, lock.Status)
			}
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, reservation.StatusCancelled); err != nil {
			return incompleteCancellation(err)
		}
		if err := tx.Vehicles().SetAvailability(ctx, tx.DB(), lock.VehicleID, true); err != nil {
			return incompleteCancellation(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("reservation cancelled", "reservation_id", id)
	return nil
}

// CompleteElapsed marks Confirmed reservations that ended before now as Completed.
func (r *reservationCommandsImpl) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Reservations().CompleteElapsed(ctx, tx.DB(), now)
		if err != nil {
			return reservationErrors.Translate(err)
		}
		return nil
	})
	return n, err
}

// A write that matched no row inside a cancellation means the two stores
// disagree; the rollback leaves both untouched.
func incompleteCancellation(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.MarkCause(err, errs.ErrGenericPersistence, "cancellation incomplete")
	}
	return reservationErrors.Translate(err)
}
