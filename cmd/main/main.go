package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Houeta/staff-roster/internal/config"
	"github.com/Houeta/staff-roster/internal/lib/logger/sl"
	"github.com/Houeta/staff-roster/internal/metrics"
	"github.com/Houeta/staff-roster/internal/repository"
	"github.com/Houeta/staff-roster/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
)

// main prints the demo roster to stdout. Diagnostics go to stderr so that
// stdout carries the roster only.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.MustLoad()
	logger := sl.Setup(cfg.Env, os.Stderr)

	err := run(ctx, cfg, logger, os.Stdout)
	stop()
	if err != nil {
		logger.Error("Roster run failed", sl.Err(err))
		os.Exit(1)
	}
}

// run displays the demo roster on stdout. Only a failed write to stdout is returned;
// storage and metrics failures are logged.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	startTime := time.Now()

	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	var repo repository.EmployeeRepoIface
	if cfg.Postgres.Enabled {
		dtb, err := repository.NewDatabase(ctx, cfg.Postgres)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to connect to DB, roster will not be stored", sl.Err(err))
		} else {
			defer dtb.Close()
			repo = repository.NewEmployeeRepository(dtb, appMetrics)
		}
	}

	staff := employees.NewStaff(logger, repo, appMetrics)
	roster := employees.DemoRoster()

	if err := staff.Display(ctx, stdout, roster); err != nil {
		return err
	}

	if err := staff.Store(ctx, roster); err != nil {
		logger.ErrorContext(ctx, "Failed to store roster", sl.Err(err))
	}

	appMetrics.RunDuration.Observe(time.Since(startTime).Seconds())

	if cfg.Metrics.PushURL != "" {
		if err := metrics.Push(ctx, cfg.Metrics.PushURL, cfg.Metrics.Job, reg); err != nil {
			logger.ErrorContext(ctx, "Failed to push metrics", sl.Err(err))
		}
	}

	return nil
}
