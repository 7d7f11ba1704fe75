//go:build unit

package readstore

import (
	"context"

	sqlc "carconnect/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Reservations, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Reservations), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByCustomerID(ctx context.Context, db sqlc.DBTX, customerID int64) ([]sqlc.Reservations, error) {
	args := m.Called(ctx, db, customerID)
	return args.Get(0).([]sqlc.Reservations), args.Error(1)
}

type MockVehicleViewQueries struct {
	mock.Mock
}

func (m *MockVehicleViewQueries) GetVehicleByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Vehicles, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Vehicles), args.Error(1)
}

func (m *MockVehicleViewQueries) GetVehicleDailyRate(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleViewQueries) ListVehicles(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vehicles, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Vehicles), args.Error(1)
}

func (m *MockVehicleViewQueries) ListAvailableVehicles(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vehicles, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Vehicles), args.Error(1)
}

type MockCustomerViewQueries struct {
	mock.Mock
}

func (m *MockCustomerViewQueries) GetCustomerByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Customers, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Customers), args.Error(1)
}

func (m *MockCustomerViewQueries) GetCustomerByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Customers, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Customers), args.Error(1)
}

func (m *MockCustomerViewQueries) ListCustomers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Customers, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Customers), args.Error(1)
}

type MockAdminViewQueries struct {
	mock.Mock
}

func (m *MockAdminViewQueries) GetAdminByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Admins, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Admins), args.Error(1)
}

func (m *MockAdminViewQueries) GetAdminByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Admins, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Admins), args.Error(1)
}

func (m *MockAdminViewQueries) ListAdmins(ctx context.Context, db sqlc.DBTX) ([]sqlc.Admins, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Admins), args.Error(1)
}
