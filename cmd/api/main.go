// Package main is the entry point for the hotel front-desk API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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
	"github.com/pressly/goose/v3"

	"github.com/ItachiRD26/hotelgil/internal/auth"
	"github.com/ItachiRD26/hotelgil/internal/config"
	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/handler"
	"github.com/ItachiRD26/hotelgil/internal/logging"
	"github.com/ItachiRD26/hotelgil/internal/middleware"
	"github.com/ItachiRD26/hotelgil/internal/repo"
	"github.com/ItachiRD26/hotelgil/internal/service"
	"github.com/ItachiRD26/hotelgil/migrations"
)

// maxBodySize caps request bodies at 1 MiB. Booking payloads are tiny; this
// only guards against accidental or hostile large uploads.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := logging.New(os.Stdout, logLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
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

	// --- Migrations -------------------------------------------------------
	// Migrations run at boot from the embedded FS, so a fresh database is
	// ready before the first request. goose needs database/sql, hence the
	// short-lived second connection.
	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")

	// --- Services ---------------------------------------------------------
	catalog := domain.DefaultCatalog()
	reservationRepo := repo.NewReservationRepo(pool)
	availabilitySvc := service.NewAvailabilityService(reservationRepo)
	reservationSvc := service.NewReservationService(reservationRepo, catalog, availabilitySvc)
	statsSvc := service.NewStatsService(reservationRepo)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)
	authenticator := auth.NewAuthenticator(cfg.AdminEmail, cfg.AdminPasswordHash, issuer)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body size cap. The bearer-token gate is applied per route
	// group inside handler.Routes so login and the health check stay public.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	server := handler.NewServer(reservationSvc, availabilitySvc, statsSvc, authenticator, catalog)
	r.Mount("/", server.Routes(middleware.NewAuthHandler(issuer)))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all pending goose migrations from the embedded FS.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
