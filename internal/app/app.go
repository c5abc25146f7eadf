// Package app initializes and runs one storekeeper session.
// It opens the log and the store, builds the services and the menu, and
// saves the metrics file when the session ends.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/storekeeper/internal/cli"
	"github.com/dmitrijs2005/storekeeper/internal/config"
	"github.com/dmitrijs2005/storekeeper/internal/filex"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/metrics"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/storekeeper/internal/services"
	"github.com/dmitrijs2005/storekeeper/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	registry *prometheus.Registry
	session  *cli.App
	logClose func() error
}

// NewApp validates c and prepares a session reading from in and writing to
// out. The caller must Run it, which also releases what NewApp opened.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	w, logClose, err := openLog(c.LogFile)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(c.LogBackend, c.LogLevel, w)
	if err != nil {
		_ = logClose()
		return nil, err
	}

	db, dialect, err := storage.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		_ = logClose()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if c.Seed {
		if err := storage.Seed(ctx, db); err != nil {
			_ = db.Close()
			_ = logClose()
			return nil, err
		}
		logger.Info(ctx, "demo data loaded")
	}

	rm := repomanager.NewSQLRepositoryManager(dialect)
	reg := prometheus.NewRegistry()

	s := cli.Services{
		Customers: services.NewCustomerService(db, rm, logger),
		Catalog:   services.NewCatalogService(db, rm),
		Orders:    services.NewOrderService(db, rm, c.TaxRateBasisPoints, logger, metrics.NewOrderMetrics(reg)),
	}

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		registry: reg,
		session:  cli.NewApp(c, s, logger, in, out),
		logClose: logClose,
	}, nil
}

// openLog opens path for appending, creating its directory if needed.
// "-" means stderr.
func openLog(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stderr, func() error { return nil }, nil
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// Run shows the menu until the user exits, the input ends or the process
// is interrupted, then shuts down.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver)
	app.session.Run(ctx)

	return app.shutdown(context.WithoutCancel(ctx))
}

func (app *App) shutdown(ctx context.Context) error {
	var errs []error

	if err := app.saveMetrics(); err != nil {
		app.logger.Error(ctx, "metrics not saved", "error", err)
		errs = append(errs, err)
	}
	if err := app.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	}

	app.logger.Info(ctx, "Stopped")
	if err := app.logClose(); err != nil {
		errs = append(errs, fmt.Errorf("close log: %w", err))
	}
	return errors.Join(errs...)
}

func (app *App) saveMetrics() error {
	if app.config.MetricsFile == "" {
		return nil
	}
	if err := filex.EnsureParentDir(app.config.MetricsFile); err != nil {
		return err
	}
	return metrics.WriteTextfile(app.config.MetricsFile, app.registry)
}
