package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"carconnect/internal/handler/middleware"
	"carconnect/internal/pkg/config"
	"carconnect/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const applyTimeout = 2 * time.Minute

// Applies pending files from DB_MIGRATIONS_DIR with the Atlas CLI.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	if err := migrate(ctx, cfg.DB, logger); err != nil {
		logger.Error("Migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func migrate(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.AtlasBinaryPath)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: cfg.MigrationsDir,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	logger.Info("Migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
