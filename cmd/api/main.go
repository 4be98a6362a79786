// Package main is the entry point for the telemetry API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/tidechart/asv-telemetry/internal/config"
	"github.com/tidechart/asv-telemetry/internal/handler"
	"github.com/tidechart/asv-telemetry/internal/middleware"
	"github.com/tidechart/asv-telemetry/internal/repo"
	"github.com/tidechart/asv-telemetry/internal/service"
	"github.com/tidechart/asv-telemetry/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Migrations -------------------------------------------------------
	// Applied at startup so the vessel deployment never needs a separate
	// migration step. goose wants a database/sql handle, not a pgx pool.
	if err := migrate(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database schema up to date")

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Services ---------------------------------------------------------
	readingRepo := repo.NewReadingRepo(pool)
	gpsRepo := repo.NewGPSRepo(pool)
	pathRepo := repo.NewPathRepo(pool)
	tripRepo := repo.NewTripRepo(pool)

	srv := handler.NewServer(
		service.NewReadingService(readingRepo),
		service.NewExportService(readingRepo),
		service.NewGPSService(gpsRepo),
		service.NewPathService(pathRepo),
		service.NewTripService(tripRepo),
	)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID and RealIP first so the logger sees them,
	// then the structured request log, then Recoverer so panics are logged
	// and turned into 500s, then CORS and the body size cap.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", srv.Routes(cfg.StaticDir))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies all pending embedded migrations against the database.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	_, err = provider.Up(context.Background())
	return err
}
