//go:build unit

package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carconnect/internal/job"
	"carconnect/internal/pkg/clock"
	"carconnect/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func TestScheduler_Run(t *testing.T) {
	now := time.Date(2024, 4, 1, 3, 0, 0, 0, time.UTC)
	cfg := config.SchedulerConfig{CompleteReservationsSpec: "@every 1h"}

	t.Run("passes the clock time to the completer", func(t *testing.T) {
		completer := new(MockCompleter)
		completer.On("CompleteElapsed", mock.Anything, now).Return(int64(3), nil)

		n, err := job.NewScheduler(cfg, completer, clock.NewMockClock(now)).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		completer.AssertExpectations(t)
	})

	t.Run("returns completer errors", func(t *testing.T) {
		completer := new(MockCompleter)
		completer.On("CompleteElapsed", mock.Anything, now).Return(int64(0), errors.New("db down"))

		n, err := job.NewScheduler(cfg, completer, clock.NewMockClock(now)).Run(context.Background())
		assert.EqualError(t, err, "db down")
		assert.Zero(t, n)
	})
}

func TestScheduler_StartStop(t *testing.T) {
	t.Run("invalid spec is rejected", func(t *testing.T) {
		s := job.NewScheduler(config.SchedulerConfig{CompleteReservationsSpec: "not a schedule"}, new(MockCompleter), clock.NewRealClock())
		assert.Error(t, s.Start())
	})

	t.Run("valid spec starts and stops", func(t *testing.T) {
		s := job.NewScheduler(config.SchedulerConfig{CompleteReservationsSpec: "@every 24h"}, new(MockCompleter), clock.NewRealClock())
		require.NoError(t, s.Start())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, s.Stop(ctx))
	})
}
