package repository

import (
	"context"

	"carconnect/internal/domain/admin"
	"carconnect/internal/infra"
	"carconnect/internal/infra/repository/converter"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/repository/admin_mock.go -package=repositorymock

type AdminWriteQueries interface {
	CreateAdmin(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAdminParams) (int64, error)
	GetAdminByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Admins, error)
	UpdateAdminByUsername(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAdminByUsernameParams) (int64, error)
	DeleteAdmin(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type AdminRepository struct {
	queries AdminWriteQueries
	db      sqlc.DBTX
}

func NewAdminRepository(queries AdminWriteQueries, db sqlc.DBTX) *AdminRepository {
	return &AdminRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AdminRepository) Create(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) (int64, error) {
	id, err := r.queries.CreateAdmin(ctx, tx, converter.AdminToInfra(a))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create admin", err)
	}
	return id, nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, tx sqlc.DBTX, username string) (*admin.Admin, error) {
	row, err := r.queries.GetAdminByUsername(ctx, tx, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by username", err)
	}

	a, err := converter.AdminFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert admin row", err, infra.KindDBFailure)
	}
	return a, nil
}

func (r *AdminRepository) Update(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) error {
	p := a.Profile()
	n, err := r.queries.UpdateAdminByUsername(ctx, tx, sqlc.UpdateAdminByUsernameParams{
		Username:    a.Username().String(),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: pgconv.OptionalStringToPgtype(p.PhoneNumber),
		Role:        a.Role(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update admin", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteAdmin(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete admin", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
	}
	return nil
}
