package readstore

import (
	"context"

	"carconnect/internal/infra"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
	"carconnect/internal/usecase/queries"
)

type CustomerViewQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Customers, error)
	GetCustomerByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Customers, error)
	ListCustomers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Customers, error)
}

// CustomerReadStore never exposes password hashes.
type CustomerReadStore struct {
	queries CustomerViewQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerViewQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id int64) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return toCustomerView(row), nil
}

func (r *CustomerReadStore) FindByUsername(ctx context.Context, username string) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by username", err)
	}
	return toCustomerView(row), nil
}

func (r *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	result := make([]*queries.CustomerView, len(rows))
	for i, row := range rows {
		result[i] = toCustomerView(row)
	}
	return result, nil
}

func toCustomerView(row sqlc.Customers) *queries.CustomerView {
	return &queries.CustomerView{
		ID:               row.ID,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		Email:            row.Email,
		PhoneNumber:      pgconv.StringFromPgtype(row.PhoneNumber),
		Address:          pgconv.StringFromPgtype(row.Address),
		Username:         row.Username,
		RegistrationDate: pgconv.TimeFromPgtype(row.RegistrationDate),
	}
}

type AdminViewQueries interface {
	GetAdminByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Admins, error)
	GetAdminByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Admins, error)
	ListAdmins(ctx context.Context, db sqlc.DBTX) ([]sqlc.Admins, error)
}

type AdminReadStore struct {
	queries AdminViewQueries
	db      sqlc.DBTX
}

func NewAdminReadStore(queries AdminViewQueries, db sqlc.DBTX) *AdminReadStore {
	return &AdminReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AdminReadStore) FindByID(ctx context.Context, id int64) (*queries.AdminView, error) {
	row, err := r.queries.GetAdminByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by ID", err)
	}
	return toAdminView(row), nil
}

func (r *AdminReadStore) FindByUsername(ctx context.Context, username string) (*queries.AdminView, error) {
	row, err := r.queries.GetAdminByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by username", err)
	}
	return toAdminView(row), nil
}

func (r *AdminReadStore) FindAll(ctx context.Context) ([]*queries.AdminView, error) {
	rows, err := r.queries.ListAdmins(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admins", err)
	}
	result := make([]*queries.AdminView, len(rows))
	for i, row := range rows {
		result[i] = toAdminView(row)
	}
	return result, nil
}

func toAdminView(row sqlc.Admins) *queries.AdminView {
	return &queries.AdminView{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		PhoneNumber: pgconv.StringFromPgtype(row.PhoneNumber),
		Username:    row.Username,
		Role:        row.Role,
		JoinDate:    pgconv.TimeFromPgtype(row.JoinDate),
	}
}
