// Package server wires the hygiene tracker backend together: configuration,
// database, migrations, business services and the REST server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/logging"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/config"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/repomanager"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/rest"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	server      *rest.Server
}

// NewApp opens the database and builds every service. Migrations run in Run.
func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	svcs := rest.Services{
		Users:        services.NewUserService(db, rm, c),
		Employees:    services.NewEmployeeService(db, rm, c),
		Equipments:   services.NewEquipmentService(db, rm),
		Temperatures: services.NewTemperatureService(db, rm),
		Traceability: services.NewTraceabilityService(db, rm),
		Photos:       services.NewPhotoService(db, rm, c),
		AdminUsers:   services.NewAdminUserService(db, rm, c),
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: rm,
		server:      rest.NewServer(c.EndpointAddrHTTP, logger, svcs, c.ShutdownTimeout),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run migrates the schema and serves until a termination signal arrives or
// ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close failed", "error", err)
		}
	}()

	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	if err := app.server.Run(ctx); err != nil {
		return fmt.Errorf("http server error: %w", err)
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
