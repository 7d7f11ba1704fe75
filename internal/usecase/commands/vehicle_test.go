//go:build unit

package commands_test

import (
	"context"
	"testing"

	"carconnect/internal/domain/reservation"
	"carconnect/internal/domain/vehicle"
	reqdto "carconnect/internal/handler/dto/request"
	"carconnect/internal/infra"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/usecase/commands"
	"carconnect/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVehicleCommands_Add(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		request   func() reqdto.AddVehicleRequest
		setupMock func(*txMocks)
		wantMark  error
	}{
		{
			name:    "success: availability defaults to true",
			request: func() reqdto.AddVehicleRequest { r := builder.NewVehicleBuilder().BuildAddRequestDTO(); r.Availability = nil; return r },
			setupMock: func(m *txMocks) {
				m.expectWithin()
				m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, v *vehicle.Vehicle) (int64, error) {
						assert.True(t, v.IsAvailable())
						assert.Equal(t, int64(5000), v.DailyRate().Cents())
						return 12, nil
					})
			},
		},
		{
			name:      "error: blank make",
			request:   func() reqdto.AddVehicleRequest { return builder.NewVehicleBuilder().With(func(b *builder.VehicleBuilder) { b.Make = "  " }).BuildAddRequestDTO() },
			setupMock: func(m *txMocks) {},
			wantMark:  errs.ErrValidation,
		},
		{
			name:    "error: duplicate registration number",
			request: func() reqdto.AddVehicleRequest { return builder.NewVehicleBuilder().BuildAddRequestDTO() },
			setupMock: func(m *txMocks) {
				m.expectWithin()
				m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), infra.WrapRepoErr("failed to create vehicle", &pgconn.PgError{Code: "23505"}))
			},
			wantMark: errs.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			tc.setupMock(m)

			id, err := commands.NewVehicleCommands(m.uow).Add(ctx, tc.request())
			if tc.wantMark != nil {
				assert.True(t, errs.Is(err, tc.wantMark), "expected %v, got %v", tc.wantMark, err)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(12), id)
		})
	}
}

func TestVehicleCommands_UpdateByRegistration(t *testing.T) {
	ctx := context.Background()
	negative := int64(-1)

	testCases := []struct {
		name      string
		request   reqdto.UpdateVehicleRequest
		setupMock func(*txMocks)
		wantMark  error
	}{
		{
			name:    "success",
			request: builder.NewVehicleBuilder().WithAvailability(false).WithDailyRateCents(6500).BuildUpdateRequestDTO(),
			setupMock: func(m *txMocks) {
				m.expectWithin()
				m.vehicles.EXPECT().UpdateByRegistration(gomock.Any(), gomock.Any(), "ABC-1234", false, reservation.MustMoney(6500)).Return(nil)
			},
		},
		{
			name:      "error: missing availability",
			request:   reqdto.UpdateVehicleRequest{DailyRateCents: &negative},
			setupMock: func(m *txMocks) {},
			wantMark:  errs.ErrValidation,
		},
		{
			name: "error: negative rate",
			request: func() reqdto.UpdateVehicleRequest {
				r := builder.NewVehicleBuilder().BuildUpdateRequestDTO()
				r.DailyRateCents = &negative
				return r
			}(),
			setupMock: func(m *txMocks) {},
			wantMark:  errs.ErrValidation,
		},
		{
			name:    "error: unknown registration number",
			request: builder.NewVehicleBuilder().BuildUpdateRequestDTO(),
			setupMock: func(m *txMocks) {
				m.expectWithin()
				m.vehicles.EXPECT().UpdateByRegistration(gomock.Any(), gomock.Any(), "ABC-1234", true, gomock.Any()).
					Return(infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound))
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

			err := commands.NewVehicleCommands(m.uow).UpdateByRegistration(ctx, "ABC-1234", tc.request)
			if tc.wantMark != nil {
				assert.True(t, errs.Is(err, tc.wantMark), "expected %v, got %v", tc.wantMark, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVehicleCommands_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)

	m.expectWithin()
	m.vehicles.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(3)).
		Return(infra.WrapRepoErr("failed to delete vehicle", &pgconn.PgError{Code: "23503"}))

	err := commands.NewVehicleCommands(m.uow).Remove(context.Background(), 3)
	assert.True(t, errs.Is(err, errs.ErrReferentialIntegrity))
	assert.Equal(t, "vehicle is referenced by reservations", err.Error())
}
