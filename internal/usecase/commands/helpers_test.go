//go:build unit

package commands_test

import (
	"context"

	"carconnect/internal/domain/auth"
	"carconnect/internal/usecase/shared"
	sharedmock "carconnect/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var (
	customerActor = auth.Principal{ID: 1, Username: "jdoe", Role: auth.RoleCustomer}
	otherCustomer = auth.Principal{ID: 2, Username: "mallory", Role: auth.RoleCustomer}
	adminActor    = auth.Principal{ID: 1, Username: "root", Role: auth.RoleAdmin}
)

// txMocks bundles a mocked transaction and the repositories it hands out.
type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	vehicles     *sharedmock.MockVehicleRepository
	customers    *sharedmock.MockCustomerRepository
	admins       *sharedmock.MockAdminRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		vehicles:     sharedmock.NewMockVehicleRepository(ctrl),
		customers:    sharedmock.NewMockCustomerRepository(ctrl),
		admins:       sharedmock.NewMockAdminRepository(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Vehicles().Return(m.vehicles).AnyTimes()
	m.tx.EXPECT().Customers().Return(m.customers).AnyTimes()
	m.tx.EXPECT().Admins().Return(m.admins).AnyTimes()
	return m
}

// expectWithin runs the callback against the mocked tx exactly once.
func (m *txMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(1)
}
