package shared

import (
	"context"
	"time"

	"carconnect/internal/domain/admin"
	"carconnect/internal/domain/customer"
	"carconnect/internal/domain/reservation"
	"carconnect/internal/domain/vehicle"
	sqlc "carconnect/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: ReadCommitted transaction; fn's error rolls everything back
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statements outside an explicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Vehicles() VehicleRepository
	Customers() CustomerRepository
	Admins() AdminRepository
	DB() sqlc.DBTX
}

// Columns of a reservation row held under FOR UPDATE.
// Status is raw because stored values may be outside the known set.
type ReservationLock struct {
	Status     string
	VehicleID  int64
	CustomerID int64
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status reservation.Status) error
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*ReservationLock, error)
	CompleteElapsed(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *vehicle.Vehicle) (int64, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*vehicle.Vehicle, error)
	DailyRate(ctx context.Context, tx sqlc.DBTX, id int64) (reservation.Money, error)
	UpdateByRegistration(ctx context.Context, tx sqlc.DBTX, registrationNumber string, available bool, dailyRate reservation.Money) error
	SetAvailability(ctx context.Context, tx sqlc.DBTX, id int64, available bool) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (int64, error)
	FindByUsername(ctx context.Context, tx sqlc.DBTX, username string) (*customer.Customer, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type AdminRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) (int64, error)
	FindByUsername(ctx context.Context, tx sqlc.DBTX, username string) (*admin.Admin, error)
	Update(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}
