package commands

import (
	"context"
	"log/slog"

	"carconnect/internal/domain/admin"
	"carconnect/internal/domain/auth"
	"carconnect/internal/domain/customer"
	reqdto "carconnect/internal/handler/dto/request"
	"carconnect/internal/pkg/clock"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/pkg/password"
	"carconnect/internal/pkg/patch"
	"carconnect/internal/usecase/shared"
)

//go:generate mockgen -source=account.go -destination=../../../tests/mock/commands/account_mock.go -package=commandsmock

var (
	customerErrors = shared.ErrorMessages{
		NotFound:  "customer not found",
		Conflict:  "username already taken",
		Integrity: "customer still has reservations",
	}
	adminErrors = shared.ErrorMessages{
		NotFound: "admin not found",
		Conflict: "username already taken",
	}
)

type CustomerCommands interface {
	Register(ctx context.Context, req reqdto.RegisterCustomerRequest) (int64, error)
	Update(ctx context.Context, username string, req reqdto.UpdateCustomerRequest, actor auth.Principal) error
	Delete(ctx context.Context, id int64) error
}

type customerCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher *password.Hasher
	clock  clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, hasher *password.Hasher, clk clock.Clock) CustomerCommands {
	return &customerCommandsImpl{
		uow:    uow,
		hasher: hasher,
		clock:  clk,
	}
}

func (c *customerCommandsImpl) Register(ctx context.Context, req reqdto.RegisterCustomerRequest) (int64, error) {
	profile, username, err := req.ToDomain()
	if err != nil {
		return 0, shared.Validation(err)
	}

	hash, err := c.hasher.Hash(req.Password)
	if err != nil {
		return 0, shared.Validation(err)
	}

	entity, err := customer.NewCustomer(profile, req.Address, username, hash, c.clock.Now())
	if err != nil {
		return 0, shared.Validation(err)
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Customers().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return customerErrors.Translate(createErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("customer registered", "customer_id", id, "username", username.String())
	return id, nil
}

// Update applies the non-blank fields of req to the stored customer.
func (c *customerCommandsImpl) Update(ctx context.Context, username string, req reqdto.UpdateCustomerRequest, actor auth.Principal) error {
	if !actor.IsAdmin() && actor.Username != username {
		return errs.MarkNew(errs.ErrForbidden, "customers may only update their own details")
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Customers().FindByUsername(ctx, tx.DB(), username)
		if err != nil {
			return customerErrors.Translate(err)
		}

		profile := current.Profile()
		err = current.ChangeDetails(
			patch.CoalesceTrimmed(req.FirstName, profile.FirstName),
			patch.CoalesceTrimmed(req.LastName, profile.LastName),
			patch.CoalesceTrimmed(req.PhoneNumber, profile.PhoneNumber),
			patch.CoalesceTrimmed(req.Address, current.Address()),
		)
		if err != nil {
			return shared.Validation(err)
		}

		if err := tx.Customers().Update(ctx, tx.DB(), current); err != nil {
			return customerErrors.Translate(err)
		}
		return nil
	})
}

func (c *customerCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Delete(ctx, tx.DB(), id); err != nil {
			return customerErrors.Translate(err)
		}
		return nil
	})
}

type AdminCommands interface {
	Register(ctx context.Context, req reqdto.RegisterAdminRequest) (int64, error)
	Update(ctx context.Context, username string, req reqdto.UpdateAdminRequest) error
	Delete(ctx context.Context, id int64) error
}

type adminCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher *password.Hasher
	clock  clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, hasher *password.Hasher, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		uow:    uow,
		hasher: hasher,
		clock:  clk,
	}
}

func (a *adminCommandsImpl) Register(ctx context.Context, req reqdto.RegisterAdminRequest) (int64, error) {
	profile, username, err := req.ToDomain()
	if err != nil {
		return 0, shared.Validation(err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return 0, shared.Validation(err)
	}

	entity, err := admin.NewAdmin(profile, username, hash, req.Role, a.clock.Now())
	if err != nil {
		return 0, shared.Validation(err)
	}

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Admins().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return adminErrors.Translate(createErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("admin registered", "admin_id", id, "username", username.String())
	return id, nil
}

func (a *adminCommandsImpl) Update(ctx context.Context, username string, req reqdto.UpdateAdminRequest) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Admins().FindByUsername(ctx, tx.DB(), username)
		if err != nil {
			return adminErrors.Translate(err)
		}

		profile := current.Profile()
		err = current.ChangeDetails(
			patch.CoalesceTrimmed(req.FirstName, profile.FirstName),
			patch.CoalesceTrimmed(req.LastName, profile.LastName),
			patch.CoalesceTrimmed(req.PhoneNumber, profile.PhoneNumber),
			patch.CoalesceTrimmed(req.Role, current.Role()),
		)
		if err != nil {
			return shared.Validation(err)
		}

		if err := tx.Admins().Update(ctx, tx.DB(), current); err != nil {
			return adminErrors.Translate(err)
		}
		return nil
	})
}

func (a *adminCommandsImpl) Delete(ctx context.Context, id int64) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Admins().Delete(ctx, tx.DB(), id); err != nil {
			return adminErrors.Translate(err)
		}
		return nil
	})
}
