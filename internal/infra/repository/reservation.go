package repository

import (
	"context"
	"time"

	"carconnect/internal/domain/reservation"
	"carconnect/internal/infra"
	"carconnect/internal/infra/repository/converter"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
	"carconnect/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation_mock.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationForUpdateRow, error)
	CompleteElapsedReservations(ctx context.Context, db sqlc.DBTX, endDate pgtype.Timestamptz) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

// UpdateStatus reports KindNotFound when no row matched id.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status reservation.Status) error {
	n, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockForUpdate must run inside a transaction; the row stays locked until it ends.
func (r *ReservationRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*shared.ReservationLock, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return &shared.ReservationLock{
		Status:     row.Status,
		VehicleID:  row.VehicleID,
		CustomerID: row.CustomerID,
	}, nil
}

func (r *ReservationRepository) CompleteElapsed(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.CompleteElapsedReservations(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete elapsed reservations", err)
	}
	return n, nil
}
