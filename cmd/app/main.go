package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artisan/cmd"
	httpadapter "artisan/internal/adapters/in/http"
	"artisan/internal/adapters/out/postgres"
	"artisan/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := cmd.LoadConfig(logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dsn, err := config.DSN()
	if err != nil {
		return err
	}
	gormDB, err := postgres.Open(dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := postgres.Close(gormDB); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()
	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(config, gormDB)
	if err != nil {
		return err
	}

	jobManager := jobs.NewJobManager(app.CreateGetOrderStatsQueryHandler(), config.StatsSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewRouter(ctx, httpadapter.RouterConfig{
		BasePath:    config.APIBasePath,
		CORSOrigins: config.CORSOrigins,
		Tokens:      app.TokenService(),
		UseCases:    app.UseCases(),
		Logger:      logger,
		HealthCheck: pingDatabase(gormDB),
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.WARN)

	return startWebServer(ctx, e, config.HTTPPort, logger)
}

// startWebServer serves until ctx is cancelled, then drains in-flight requests.
func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func pingDatabase(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
