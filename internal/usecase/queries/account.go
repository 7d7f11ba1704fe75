package queries

import (
	"context"

	"carconnect/internal/domain/auth"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/usecase/shared"
)

//go:generate mockgen -source=account.go -destination=../../../tests/mock/queries/account_mock.go -package=queriesmock

type CustomerReadStore interface {
	FindByID(ctx context.Context, id int64) (*CustomerView, error)
	FindByUsername(ctx context.Context, username string) (*CustomerView, error)
	FindAll(ctx context.Context) ([]*CustomerView, error)
}

type CustomerQueries interface {
	GetAll(ctx context.Context) ([]*CustomerView, error)
	GetByID(ctx context.Context, id int64, actor auth.Principal) (*CustomerView, error)
	GetByUsername(ctx context.Context, username string, actor auth.Principal) (*CustomerView, error)
}

var (
	customerErrors = shared.ErrorMessages{NotFound: "customer not found"}
	adminErrors    = shared.ErrorMessages{NotFound: "admin not found"}
)

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) GetAll(ctx context.Context) ([]*CustomerView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, customerErrors.Translate(err)
	}
	if len(views) == 0 {
		return nil, errs.MarkNew(errs.ErrNotFound, "no customers found")
	}
	return views, nil
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id int64, actor auth.Principal) (*CustomerView, error) {
	if err := authorizeCustomer(actor, id); err != nil {
		return nil, err
	}
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, customerErrors.Translate(err)
	}
	return view, nil
}

func (q *customerQueriesImpl) GetByUsername(ctx context.Context, username string, actor auth.Principal) (*CustomerView, error) {
	if !actor.IsAdmin() && actor.Username != username {
		return nil, errs.MarkNew(errs.ErrForbidden, "access to another customer's data is not allowed")
	}
	view, err := q.readStore.FindByUsername(ctx, username)
	if err != nil {
		return nil, customerErrors.Translate(err)
	}
	return view, nil
}

type AdminReadStore interface {
	FindByID(ctx context.Context, id int64) (*AdminView, error)
	FindByUsername(ctx context.Context, username string) (*AdminView, error)
	FindAll(ctx context.Context) ([]*AdminView, error)
}

// AdminQueries is only reachable by admins, so it does no ownership checks.
type AdminQueries interface {
	GetAll(ctx context.Context) ([]*AdminView, error)
	GetByID(ctx context.Context, id int64) (*AdminView, error)
	GetByUsername(ctx context.Context, username string) (*AdminView, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{readStore: readStore}
}

func (q *adminQueriesImpl) GetAll(ctx context.Context) ([]*AdminView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, adminErrors.Translate(err)
	}
	if len(views) == 0 {
		return nil, errs.MarkNew(errs.ErrNotFound, "no admins found")
	}
	return views, nil
}

func (q *adminQueriesImpl) GetByID(ctx context.Context, id int64) (*AdminView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, adminErrors.Translate(err)
	}
	return view, nil
}

func (q *adminQueriesImpl) GetByUsername(ctx context.Context, username string) (*AdminView, error) {
	view, err := q.readStore.FindByUsername(ctx, username)
	if err != nil {
		return nil, adminErrors.Translate(err)
	}
	return view, nil
}
