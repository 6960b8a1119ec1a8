// Package server assembles the contact service: configuration, database pool,
// migrations, services and the HTTP API, and runs them until a shutdown
// signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/metrics"
	"github.com/dmitrijs2005/contactdesk/internal/server/config"
	"github.com/dmitrijs2005/contactdesk/internal/server/database"
	"github.com/dmitrijs2005/contactdesk/internal/server/httpapi"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactdesk/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

// NewApp opens the pool, applies migrations and wires the HTTP API. Any
// failure aborts startup; no connection is retried.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	if err := metrics.RegisterDBStats(prometheus.DefaultRegisterer, db, "contactdesk"); err != nil {
		db.Close()
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	h := httpapi.NewHandler(
		services.NewAuthService(db, rm, logger),
		services.NewContactService(db, rm, logger),
		services.NewInteractionService(db, rm, logger),
		db,
		cfg.Location(),
		logger.With("module", "http"),
	)
	srv := httpapi.NewServer(cfg.ListenAddr, httpapi.NewServeMux(h, logger), cfg.ShutdownTimeout, logger)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

// Run serves until SIGINT/SIGTERM or a server failure, then closes the pool.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "address", app.config.ListenAddr, "time_zone", app.config.TimeZone)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.server.Run(gCtx)
	})

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("db close: %w", cerr))
	}
	if err != nil {
		app.logger.Error(context.Background(), "app exited with error", "error", err)
		return err
	}

	app.logger.Info(context.Background(), "app shut down gracefully")
	return nil
}
