package queries

import (
	"context"

	"carconnect/internal/domain/auth"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetAll(ctx context.Context) ([]*ReservationView, error)
	GetByID(ctx context.Context, id int64, actor auth.Principal) (*ReservationView, error)
	GetByCustomerID(ctx context.Context, customerID int64, actor auth.Principal) ([]*ReservationView, error)
}

var reservationErrors = shared.ErrorMessages{NotFound: "reservation not found"}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetAll(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, reservationErrors.Translate(err)
	}
	if len(views) == 0 {
		return nil, errs.MarkNew(errs.ErrNotFound, "no reservations found")
	}
	return views, nil
}

// GetByID lets customers read only their own reservations.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64, actor auth.Principal) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, reservationErrors.Translate(err)
	}
	if !actor.IsAdmin() && view.CustomerID != actor.ID {
		return nil, errs.MarkNew(errs.ErrForbidden, "reservation belongs to another customer")
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByCustomerID(ctx context.Context, customerID int64, actor auth.Principal) ([]*ReservationView, error) {
	if err := authorizeCustomer(actor, customerID); err != nil {
		return nil, err
	}

	views, err := q.readStore.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, reservationErrors.Translate(err)
	}
	if len(views) == 0 {
		return nil, errs.MarkNew(errs.ErrNotFound, "no reservations found for customer %d", customerID)
	}
	return views, nil
}

func authorizeCustomer(actor auth.Principal, customerID int64) error {
	if actor.IsAdmin() || actor.ID == customerID {
		return nil
	}
	return errs.MarkNew(errs.ErrForbidden, "access to another customer's data is not allowed")
}
