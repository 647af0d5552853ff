package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/cfohub/cfohub/internal/hub/http"
	"github.com/cfohub/cfohub/internal/hub/service"
	"github.com/cfohub/cfohub/internal/hub/store"
	"github.com/cfohub/cfohub/internal/hub/store/drivers/sqlite"
	"github.com/cfohub/cfohub/pkg/cryptox"
	"github.com/cfohub/cfohub/pkg/httpx"
	"github.com/cfohub/cfohub/pkg/jwtx"
	"github.com/cfohub/cfohub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the hub service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	hasher *cryptox.Hasher
	signer *jwtx.HS256

	authService         *service.AuthService
	userService         *service.UserService
	permissionService   *service.PermissionService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "hub-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	hasher, err := cryptox.NewHasher(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	app.hasher = hasher

	signer, err := jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("hub service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down hub service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("hub service stopped")
	return nil
}

// initDatabase opens the SQLite store and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices wires the business logic services.
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Hasher:     app.hasher,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTTL,
		RefreshTTL: app.cfg.RefreshTTL,
	}

	app.userService = &service.UserService{
		Store:  app.db,
		Hasher: app.hasher,
	}

	app.permissionService = &service.PermissionService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	limits := &httpapi.RateLimits{
		Login: httpx.NewRateLimiter(httpx.RateLimitConfig{
			RequestsPerWindow: app.cfg.LoginRateLimit,
			Window:            time.Minute,
			Burst:             app.cfg.LoginRateLimit,
		}),
		Refresh: httpx.NewRateLimiter(httpx.RateLimitConfig{
			RequestsPerWindow: app.cfg.RefreshRateLimit,
			Window:            time.Minute,
			Burst:             app.cfg.RefreshRateLimit,
		}),
		Register: httpx.NewRateLimiter(httpx.RateLimitConfig{
			RequestsPerWindow: app.cfg.RegisterRateLimit,
			Window:            time.Hour,
			Burst:             app.cfg.RegisterRateLimit,
		}),
		General: httpx.NewRateLimiter(httpx.RateLimitConfig{
			RequestsPerWindow: 120,
			Window:            time.Minute,
			Burst:             30,
		}),
	}

	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
		limits,
	)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.PermissionService = app.permissionService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
