package bootstrap

import (
	"context"
	"log/slog"

	"carconnect/internal/job"
	"carconnect/internal/pkg/clock"
	"carconnect/internal/pkg/config"
	"carconnect/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(cfg config.Config, cmds commands.ReservationCommands, clk clock.Clock) *job.Scheduler {
	return job.NewScheduler(cfg.Scheduler, cmds, clk)
}

func startScheduler(lc fx.Lifecycle, cfg config.Config, s *job.Scheduler) {
	if !cfg.Scheduler.Enabled {
		slog.Info("reservation completion scheduler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
