package repository

import (
	"context"

	"carconnect/internal/domain/customer"
	"carconnect/internal/infra"
	"carconnect/internal/infra/repository/converter"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
)

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/repository/customer_mock.go -package=repositorymock

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (int64, error)
	GetCustomerByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Customers, error)
	UpdateCustomerByUsername(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerByUsernameParams) (int64, error)
	DeleteCustomer(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (int64, error) {
	id, err := r.queries.CreateCustomer(ctx, tx, converter.CustomerToInfra(c))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) FindByUsername(ctx context.Context, tx sqlc.DBTX, username string) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByUsername(ctx, tx, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by username", err)
	}

	c, err := converter.CustomerFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert customer row", err, infra.KindDBFailure)
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error {
	p := c.Profile()
	n, err := r.queries.UpdateCustomerByUsername(ctx, tx, sqlc.UpdateCustomerByUsernameParams{
		Username:    c.Username().String(),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: pgconv.OptionalStringToPgtype(p.PhoneNumber),
		Address:     pgconv.OptionalStringToPgtype(c.Address()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteCustomer(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
