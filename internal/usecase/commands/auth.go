package commands

import (
	"context"
	"log/slog"
	"time"

	"carconnect/internal/domain/auth"
	reqdto "carconnect/internal/handler/dto/request"
	"carconnect/internal/infra"
	"carconnect/internal/pkg/clock"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/pkg/jwt"
	"carconnect/internal/pkg/password"
	"carconnect/internal/usecase/shared"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	ExpiresAt   time.Time
	Principal   auth.Principal
}

type AuthCommands interface {
	LoginCustomer(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	LoginAdmin(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     *password.Hasher
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher *password.Hasher, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		jwtService: jwtService,
		clock:      clk,
	}
}

// storedAccount is what login needs from either account table.
type storedAccount struct {
	id           int64
	username     string
	passwordHash string
}

func (a *authCommandsImpl) LoginCustomer(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	return a.login(ctx, req, auth.RoleCustomer, func(ctx context.Context, tx shared.Tx, username string) (*storedAccount, error) {
		c, err := tx.Customers().FindByUsername(ctx, tx.DB(), username)
		if err != nil {
			return nil, err
		}
		return &storedAccount{id: c.ID(), username: c.Username().String(), passwordHash: c.PasswordHash()}, nil
	})
}

func (a *authCommandsImpl) LoginAdmin(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	return a.login(ctx, req, auth.RoleAdmin, func(ctx context.Context, tx shared.Tx, username string) (*storedAccount, error) {
		ad, err := tx.Admins().FindByUsername(ctx, tx.DB(), username)
		if err != nil {
			return nil, err
		}
		return &storedAccount{id: ad.ID(), username: ad.Username().String(), passwordHash: ad.PasswordHash()}, nil
	})
}

type accountLookup func(ctx context.Context, tx shared.Tx, username string) (*storedAccount, error)

func (a *authCommandsImpl) login(ctx context.Context, req reqdto.LoginRequest, role auth.Role, lookup accountLookup) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, shared.Validation(err)
	}

	var account *storedAccount
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lookupErr error
		account, lookupErr = lookup(ctx, tx, credentials.Username())
		return lookupErr
	})
	if err != nil {
		// Unknown username and wrong password must look the same to the caller
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, invalidCredentials(err)
		}
		return nil, shared.ErrorMessages{}.Translate(err)
	}

	if err := a.hasher.Compare(account.passwordHash, credentials.Password()); err != nil {
		return nil, invalidCredentials(err)
	}

	principal := auth.Principal{ID: account.id, Username: account.username, Role: role}
	token, err := a.jwtService.GenerateToken(principal)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("login succeeded", "role", role.String(), "account_id", account.id)
	lifetime := a.jwtService.Duration()
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   lifetime,
		ExpiresAt:   a.clock.Now().Add(lifetime),
		Principal:   principal,
	}, nil
}

func invalidCredentials(cause error) error {
	return errs.MarkCause(cause, errs.ErrInvalidCredentials, "%s", auth.ErrInvalidCredentials.Error())
}
