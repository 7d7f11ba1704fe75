//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"carconnect/internal/domain/auth"
	"carconnect/internal/infra"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/usecase/queries"
	"carconnect/tests/common/builder"
	queriesmock "carconnect/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	customerActor = auth.Principal{ID: 1, Username: "jdoe", Role: auth.RoleCustomer}
	otherCustomer = auth.Principal{ID: 2, Username: "mallory", Role: auth.RoleCustomer}
	adminActor    = auth.Principal{ID: 1, Username: "root", Role: auth.RoleAdmin}
)

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewReservationBuilder().WithID(5).WithCustomerID(1).BuildView()

	testCases := []struct {
		name      string
		actor     auth.Principal
		setupMock func(*queriesmock.MockReservationReadStore)
		wantMark  error
	}{
		{
			name:  "success: owner reads own reservation",
			actor: customerActor,
			setupMock: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByID(ctx, int64(5)).Return(view, nil)
			},
		},
		{
			name:  "success: admin reads any reservation",
			actor: adminActor,
			setupMock: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByID(ctx, int64(5)).Return(view, nil)
			},
		},
		{
			name:  "error: another customer is forbidden",
			actor: otherCustomer,
			setupMock: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByID(ctx, int64(5)).Return(view, nil)
			},
			wantMark: errs.ErrForbidden,
		},
		{
			name:  "error: reservation not found",
			actor: adminActor,
			setupMock: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByID(ctx, int64(5)).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))
			},
			wantMark: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			readStore := queriesmock.NewMockReservationReadStore(ctrl)
			tc.setupMock(readStore)

			got, err := queries.NewReservationQueries(readStore).GetByID(ctx, 5, tc.actor)
			if tc.wantMark != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantMark), "expected %v, got %v", tc.wantMark, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestReservationQueries_GetByCustomerID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		actor     auth.Principal
		setupMock func(*queriesmock.MockReservationReadStore)
		wantLen   int
		wantMark  error
	}{
		{
			name:  "success: customer lists own reservations",
			actor: customerActor,
			setupMock: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByCustomerID(ctx, int64(1)).Return([]*queries.ReservationView{
					builder.NewReservationBuilder().WithID(1).BuildView(),
					builder.NewReservationBuilder().WithID(2).BuildView(),
				}, nil)
			},
			wantLen: 2,
		},
		{
			name:      "error: listing someone else's reservations",
			actor:     otherCustomer,
			setupMock: func(m *queriesmock.MockReservationReadStore) {},
			wantMark:  errs.ErrForbidden,
		},
		{
			name:  "error: empty result is not found",
			actor: adminActor,
			setupMock: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByCustomerID(ctx, int64(1)).Return([]*queries.ReservationView{}, nil)
			},
			wantMark: errs.ErrNotFound,
		},
		{
			name:  "error: database unreachable",
			actor: adminActor,
			setupMock: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByCustomerID(ctx, int64(1)).Return(nil, infra.WrapRepoErr("x", errors.New("dial"), infra.KindConnectivity))
			},
			wantMark: errs.ErrDatabaseConnectivity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			readStore := queriesmock.NewMockReservationReadStore(ctrl)
			tc.setupMock(readStore)

			got, err := queries.NewReservationQueries(readStore).GetByCustomerID(ctx, 1, tc.actor)
			if tc.wantMark != nil {
				assert.True(t, errs.Is(err, tc.wantMark), "expected %v, got %v", tc.wantMark, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tc.wantLen)
		})
	}
}

func TestReservationQueries_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockReservationReadStore(ctrl)
		readStore.EXPECT().FindAll(ctx).Return(nil, nil)

		_, err := queries.NewReservationQueries(readStore).GetAll(ctx)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Equal(t, "no reservations found", err.Error())
	})

	t.Run("rows are returned as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockReservationReadStore(ctrl)
		rows := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}
		readStore.EXPECT().FindAll(ctx).Return(rows, nil)

		got, err := queries.NewReservationQueries(readStore).GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})
}
