//go:build unit

package queries_test

import (
	"context"
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

func TestCustomerQueries_Access(t *testing.T) {
	ctx := context.Background()
	view := builder.NewCustomerBuilder().BuildView()

	testCases := []struct {
		name      string
		actor     auth.Principal
		setupMock func(*queriesmock.MockCustomerReadStore)
		call      func(queries.CustomerQueries, auth.Principal) (*queries.CustomerView, error)
		wantMark  error
	}{
		{
			name:  "by id: customer reads own profile",
			actor: customerActor,
			setupMock: func(m *queriesmock.MockCustomerReadStore) {
				m.EXPECT().FindByID(ctx, int64(1)).Return(view, nil)
			},
			call: func(q queries.CustomerQueries, p auth.Principal) (*queries.CustomerView, error) {
				return q.GetByID(ctx, 1, p)
			},
		},
		{
			name:      "by id: other customer is rejected before lookup",
			actor:     otherCustomer,
			setupMock: func(m *queriesmock.MockCustomerReadStore) {},
			call: func(q queries.CustomerQueries, p auth.Principal) (*queries.CustomerView, error) {
				return q.GetByID(ctx, 1, p)
			},
			wantMark: errs.ErrForbidden,
		},
		{
			name:  "by username: admin reads anyone",
			actor: adminActor,
			setupMock: func(m *queriesmock.MockCustomerReadStore) {
				m.EXPECT().FindByUsername(ctx, "jdoe").Return(view, nil)
			},
			call: func(q queries.CustomerQueries, p auth.Principal) (*queries.CustomerView, error) {
				return q.GetByUsername(ctx, "jdoe", p)
			},
		},
		{
			name:      "by username: other customer is rejected",
			actor:     otherCustomer,
			setupMock: func(m *queriesmock.MockCustomerReadStore) {},
			call: func(q queries.CustomerQueries, p auth.Principal) (*queries.CustomerView, error) {
				return q.GetByUsername(ctx, "jdoe", p)
			},
			wantMark: errs.ErrForbidden,
		},
		{
			name:  "by username: unknown customer",
			actor: adminActor,
			setupMock: func(m *queriesmock.MockCustomerReadStore) {
				m.EXPECT().FindByUsername(ctx, "ghost").Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))
			},
			call: func(q queries.CustomerQueries, p auth.Principal) (*queries.CustomerView, error) {
				return q.GetByUsername(ctx, "ghost", p)
			},
			wantMark: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			readStore := queriesmock.NewMockCustomerReadStore(ctrl)
			tc.setupMock(readStore)

			got, err := tc.call(queries.NewCustomerQueries(readStore), tc.actor)
			if tc.wantMark != nil {
				assert.True(t, errs.Is(err, tc.wantMark), "expected %v, got %v", tc.wantMark, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestCustomerQueries_GetAll_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockCustomerReadStore(ctrl)
	readStore.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

	_, err := queries.NewCustomerQueries(readStore).GetAll(context.Background())
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestAdminQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("get all returns rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockAdminReadStore(ctrl)
		rows := []*queries.AdminView{builder.NewAdminBuilder().BuildView()}
		readStore.EXPECT().FindAll(ctx).Return(rows, nil)

		got, err := queries.NewAdminQueries(readStore).GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("get by username not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockAdminReadStore(ctrl)
		readStore.EXPECT().FindByUsername(ctx, "nobody").Return(nil, infra.WrapRepoErr("admin not found", nil, infra.KindNotFound))

		_, err := queries.NewAdminQueries(readStore).GetByUsername(ctx, "nobody")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Equal(t, "admin not found", err.Error())
	})
}
