package job

import (
	"context"
	"log/slog"
	"time"

	"carconnect/internal/pkg/clock"
	"carconnect/internal/pkg/config"
	"carconnect/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const runTimeout = time.Minute

// ReservationCompleter is the part of the reservation commands the job drives.
type ReservationCompleter interface {
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler periodically marks Confirmed reservations whose end date has
// passed as Completed.
type Scheduler struct {
	cron      *cron.Cron
	completer ReservationCompleter
	clock     clock.Clock
	spec      string
}

func NewScheduler(cfg config.SchedulerConfig, completer ReservationCompleter, clk clock.Clock) *Scheduler {
	logger := cronLogger{slog.Default().With("component", "scheduler")}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	return &Scheduler{
		cron:      c,
		completer: completer,
		clock:     clk,
		spec:      cfg.CompleteReservationsSpec,
	}
}

// Start registers the sweep and starts the cron goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runOnce); err != nil {
		return errs.Wrapf(err, "invalid schedule %q", s.spec)
	}
	s.cron.Start()
	slog.Info("reservation completion scheduler started", "spec", s.spec)
	return nil
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("reservation completion scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := s.Run(ctx); err != nil {
		slog.Error("reservation completion failed", "error", err.Error())
	}
}

// Run performs one sweep and returns how many reservations were completed.
func (s *Scheduler) Run(ctx context.Context) (int64, error) {
	now := s.clock.Now()
	n, err := s.completer.CompleteElapsed(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("reservations completed", "count", n, "as_of", now.Format(time.RFC3339))
	} else {
		slog.Debug("no elapsed reservations", "as_of", now.Format(time.RFC3339))
	}
	return n, nil
}

// cronLogger routes cron's own messages through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err.Error())...)
}
