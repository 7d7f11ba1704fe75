//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"carconnect/internal/domain/admin"
	"carconnect/internal/domain/customer"
	"carconnect/internal/infra"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/clock"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/pkg/password"
	"carconnect/internal/usecase/commands"
	"carconnect/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var registeredAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCustomerCommands_Register(t *testing.T) {
	ctx := context.Background()
	hasher := password.NewHasher(bcrypt.MinCost)

	t.Run("success: password is hashed and registration date stamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.expectWithin()
		m.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, c *customer.Customer) (int64, error) {
				assert.NoError(t, hasher.Compare(c.PasswordHash(), "password123"))
				assert.Equal(t, registeredAt, c.RegistrationDate())
				return 21, nil
			})

		cmds := commands.NewCustomerCommands(m.uow, hasher, clock.NewMockClock(registeredAt))
		id, err := cmds.Register(ctx, builder.NewCustomerBuilder().BuildRegisterRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, int64(21), id)
	})

	t.Run("error: username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.expectWithin()
		m.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to create customer", &pgconn.PgError{Code: "23505"}))

		cmds := commands.NewCustomerCommands(m.uow, hasher, clock.NewMockClock(registeredAt))
		_, err := cmds.Register(ctx, builder.NewCustomerBuilder().BuildRegisterRequestDTO())
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, "username already taken", err.Error())
	})

	t.Run("error: blank first name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		req := builder.NewCustomerBuilder().BuildRegisterRequestDTO()
		req.FirstName = " "
		cmds := commands.NewCustomerCommands(m.uow, hasher, clock.NewMockClock(registeredAt))
		_, err := cmds.Register(ctx, req)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestCustomerCommands_Update(t *testing.T) {
	ctx := context.Background()
	hasher := password.NewHasher(bcrypt.MinCost)

	testCases := []struct {
		name      string
		setupMock func(*txMocks)
		wantMark  error
	}{
		{
			name: "success: blank fields keep stored values",
			setupMock: func(m *txMocks) {
				m.expectWithin()
				m.customers.EXPECT().FindByUsername(gomock.Any(), gomock.Any(), "jdoe").Return(builder.NewCustomerBuilder().BuildStored(), nil)
				m.customers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, c *customer.Customer) error {
						assert.Equal(t, "Johnny", c.Profile().FirstName)
						assert.Equal(t, "Doe", c.Profile().LastName)
						assert.Equal(t, "1 Main St", c.Address())
						return nil
					})
			},
		},
		{
			name: "error: customer not found",
			setupMock: func(m *txMocks) {
				m.expectWithin()
				m.customers.EXPECT().FindByUsername(gomock.Any(), gomock.Any(), "jdoe").
					Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))
			},
			wantMark: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			tc.setupMock(m)

			first, blank := "Johnny", "   "
			req := builder.NewCustomerBuilder().BuildUpdateRequestDTO()
			req.FirstName = &first
			req.LastName = &blank
			req.Address = nil

			err := commands.NewCustomerCommands(m.uow, hasher, clock.NewRealClock()).Update(ctx, "jdoe", req, customerActor)
			if tc.wantMark != nil {
				assert.True(t, errs.Is(err, tc.wantMark), "expected %v, got %v", tc.wantMark, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("error: customer updating someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		err := commands.NewCustomerCommands(m.uow, hasher, clock.NewRealClock()).
			Update(ctx, "jdoe", builder.NewCustomerBuilder().BuildUpdateRequestDTO(), otherCustomer)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}

func TestCustomerCommands_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	m.expectWithin()
	m.customers.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(1)).
		Return(infra.WrapRepoErr("failed to delete customer", &pgconn.PgError{Code: "23503"}))

	err := commands.NewCustomerCommands(m.uow, password.NewHasher(bcrypt.MinCost), clock.NewRealClock()).Delete(context.Background(), 1)
	assert.True(t, errs.Is(err, errs.ErrReferentialIntegrity))
	assert.Equal(t, "customer still has reservations", err.Error())
}

func TestAdminCommands(t *testing.T) {
	ctx := context.Background()
	hasher := password.NewHasher(bcrypt.MinCost)

	t.Run("register stamps the join date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.expectWithin()
		m.admins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, a *admin.Admin) (int64, error) {
				assert.Equal(t, registeredAt, a.JoinDate())
				assert.Equal(t, "Fleet Manager", a.Role())
				return 5, nil
			})

		id, err := commands.NewAdminCommands(m.uow, hasher, clock.NewMockClock(registeredAt)).
			Register(ctx, builder.NewAdminBuilder().BuildRegisterRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("update changes the role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.expectWithin()
		m.admins.EXPECT().FindByUsername(gomock.Any(), gomock.Any(), "asmith").Return(builder.NewAdminBuilder().BuildStored(), nil)
		m.admins.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, a *admin.Admin) error {
				assert.Equal(t, "Super Admin", a.Role())
				return nil
			})

		req := builder.NewAdminBuilder().BuildUpdateRequestDTO()
		role := "Super Admin"
		req.Role = &role
		err := commands.NewAdminCommands(m.uow, hasher, clock.NewRealClock()).Update(ctx, "asmith", req)
		assert.NoError(t, err)
	})

	t.Run("delete unknown admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.expectWithin()
		m.admins.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(9)).Return(infra.WrapRepoErr("admin not found", nil, infra.KindNotFound))

		err := commands.NewAdminCommands(m.uow, hasher, clock.NewRealClock()).Delete(ctx, 9)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
