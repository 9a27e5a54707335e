package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/dashboard"
	"github.com/hms/hms/internal/domain/inventory"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/domain/staff"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/middleware"
	"github.com/hms/hms/internal/platform/validate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hms-server",
		Short:        "Hospital management API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func newLogger(env, level string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}

// openPool connects to the configured database. The DSN carries the
// password and is never logged.
func openPool(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*pgxpool.Pool, error) {
	pool, err := db.NewPool(ctx, cfg.DatabaseURL(), cfg.DBMaxConns, cfg.DBMinConns, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to database %s:%d/%s: %w", cfg.DBHost, cfg.DBPort, cfg.DBName, err)
	}
	return pool, nil
}

func runServer() error {
	logger := newLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger = newLogger(cfg.Env, cfg.LogLevel)

	// Database
	pool, err := openPool(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().
		Str("host", cfg.DBHost).
		Int("port", cfg.DBPort).
		Str("database", cfg.DBName).
		Msg("connected to database")

	e := newServer(cfg, pool, logger)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

// services groups the domain services shared by the HTTP server and the
// report command.
type services struct {
	patients   *patient.Service
	scheduling *scheduling.Service
	inventory  *inventory.Service
	staff      *staff.Service
	dashboard  *dashboard.Service
}

func newServices(conn db.DB) *services {
	return &services{
		patients:   patient.NewService(patient.NewRepoPG(conn)),
		scheduling: scheduling.NewService(scheduling.NewRepoPG(conn)),
		inventory:  inventory.NewService(inventory.NewRepoPG(conn)),
		staff:      staff.NewService(staff.NewRepoPG(conn)),
		dashboard:  dashboard.NewService(dashboard.NewRepoPG(conn)),
	}
}

// database is the subset of *pgxpool.Pool the server needs.
type database interface {
	db.DB
	db.StatSource
}

func newServer(cfg *config.Config, pool database, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.RequestIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	api := e.Group("/api")
	api.Use(echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimitRPS),
			Burst:     cfg.RateLimitBurst,
			ExpiresIn: 3 * time.Minute,
		}),
	}))

	svc := newServices(pool)
	patient.NewHandler(svc.patients).RegisterRoutes(api)
	scheduling.NewHandler(svc.scheduling).RegisterRoutes(api)
	inventory.NewHandler(svc.inventory).RegisterRoutes(api)
	staff.NewHandler(svc.staff).RegisterRoutes(api)
	dashboard.NewHandler(svc.dashboard, svc.inventory, svc.staff, cfg.UpcomingFromToday).RegisterRoutes(api)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/db", db.HealthHandler(pool, 2*time.Second))

	return e
}
