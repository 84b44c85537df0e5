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

	httpapi "github.com/prakarsateknik/opsdesk/internal/ops/http"
	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/internal/ops/store/drivers/sqlite"
	"github.com/prakarsateknik/opsdesk/pkg/cryptox"
	"github.com/prakarsateknik/opsdesk/pkg/jwtx"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the dashboard service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager
	feed       *service.Feed

	// Services
	authService          *service.AuthService
	profileService       *service.ProfileService
	customerService      *service.CustomerService
	itemService          *service.ItemService
	purchaseOrderService *service.PurchaseOrderService
	productionService    *service.ProductionService
	referenceService     *service.ReferenceService
	notificationService  *service.NotificationService
	housekeepingService  *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "opsdesk",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keyManager = keyManager

	app.initServices()

	if err := app.bootstrapAdmin(); err != nil {
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("opsdesk service starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down opsdesk service...")

	// Give outstanding requests a deadline for completion
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

	app.logger.Info("opsdesk service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
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

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.feed = service.NewFeed()
	notifier := &service.Notifier{Store: app.db, Feed: app.feed}

	accessTTL := app.cfg.AccessTokenTTL
	if accessTTL <= 0 {
		accessTTL = jwtx.DefaultAccessTokenTTL
	}
	rememberTTL := app.cfg.RememberTokenTTL
	if rememberTTL <= 0 {
		rememberTTL = jwtx.DefaultRememberTokenTTL
	}

	app.authService = &service.AuthService{
		KeyManager:  app.keyManager,
		Store:       app.db,
		Issuer:      app.cfg.Issuer,
		Audience:    app.cfg.Audience,
		AccessTTL:   accessTTL,
		RememberTTL: rememberTTL,
	}

	app.profileService = &service.ProfileService{Store: app.db}
	app.customerService = &service.CustomerService{Store: app.db, Notifier: notifier}
	app.itemService = &service.ItemService{Store: app.db, Notifier: notifier}
	app.purchaseOrderService = &service.PurchaseOrderService{Store: app.db, Notifier: notifier}
	app.productionService = &service.ProductionService{Store: app.db, Notifier: notifier}
	app.referenceService = &service.ReferenceService{Store: app.db}
	app.notificationService = &service.NotificationService{Store: app.db, Feed: app.feed}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.NotificationRetention,
	)
}

// bootstrapAdmin seeds the first Direktur account on an empty database so a
// fresh deployment is reachable. A generated password is logged once.
func (app *Application) bootstrapAdmin() error {
	if app.cfg.BootstrapAdminEmail == "" {
		return nil
	}

	password := app.cfg.BootstrapAdminPassword
	generated := false
	if password == "" {
		var err error
		if password, err = cryptox.GeneratePassword(); err != nil {
			return fmt.Errorf("failed to generate bootstrap password: %w", err)
		}
		generated = true
	}

	ctx := context.Background()
	if err := app.profileService.EnsureBootstrapAdmin(
		ctx,
		app.cfg.BootstrapAdminEmail,
		password,
		app.cfg.BootstrapAdminName,
	); err != nil {
		return fmt.Errorf("failed to bootstrap admin account: %w", err)
	}

	if generated {
		app.logger.Warn("bootstrap admin password generated, change it after first login",
			"email", app.cfg.BootstrapAdminEmail,
			"password", password,
		)
	}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.ProfileService = app.profileService
	router.CustomerService = app.customerService
	router.ItemService = app.itemService
	router.PurchaseOrderService = app.purchaseOrderService
	router.ProductionService = app.productionService
	router.ReferenceService = app.referenceService
	router.NotificationService = app.notificationService
	router.Feed = app.feed
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
