package app

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

	httpapi "github.com/aussiebroadwan/notes/internal/notes/http"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	pepperSize = 32
)

// Application encapsulates the notes service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	hasher   *cryptox.PasswordHasher
	signer   jwtx.Signer
	verifier jwtx.Verifier

	// Services
	authService         *service.AuthService
	subscriptionService *service.SubscriptionService
	noteService         *service.NoteService
	tenantService       *service.TenantService
	userService         *service.UserService
	invitationService   *service.InvitationService
	seedService         *service.SeedService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "notes-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initCrypto(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()

	if err := app.seed(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("notes service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	app.logger.Info("shutting down notes service...")

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

	app.logger.Info("notes service stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "path", app.cfg.DatabaseFile)
	return nil
}

// initCrypto loads the password pepper and the token signing secret
func (app *Application) initCrypto() error {
	pepper, err := cryptox.LoadOrCreateSecret(app.cfg.PepperFile, pepperSize)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	secret, err := loadJWTSecret(app.cfg, app.logger)
	if err != nil {
		return err
	}
	signer, err := jwtx.NewHS256Signer(secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewHS256Verifier(secret, app.cfg.Issuer, app.cfg.Audience)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:    app.db,
		Hasher:   app.hasher,
		Signer:   app.signer,
		Issuer:   app.cfg.Issuer,
		Audience: app.cfg.Audience,
		TokenTTL: jwtx.DefaultAccessTokenTTL,
	}
	app.subscriptionService = &service.SubscriptionService{Store: app.db}
	app.noteService = &service.NoteService{
		Store:         app.db,
		Subscriptions: app.subscriptionService,
	}
	app.tenantService = &service.TenantService{
		Store:         app.db,
		Subscriptions: app.subscriptionService,
	}
	app.userService = &service.UserService{Store: app.db}
	app.invitationService = &service.InvitationService{
		Store:         app.db,
		Subscriptions: app.subscriptionService,
		Auth:          app.authService,
		Hasher:        app.hasher,
		PublicURL:     app.cfg.PublicURL,
	}
	app.seedService = &service.SeedService{
		Store:    app.db,
		Hasher:   app.hasher,
		Password: app.cfg.SeedPassword,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// seed creates the demo tenants when enabled. An already populated database
// is left alone.
func (app *Application) seed(ctx context.Context) error {
	if !app.cfg.SeedDemoData {
		return nil
	}
	ctx = slogx.WithContext(ctx, app.logger)

	err := app.seedService.Seed(ctx)
	if errors.Is(err, service.ErrAlreadySeeded) {
		app.logger.Info("database already has tenants, skipping demo seed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.RateLimits,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.NoteService = app.noteService
	router.SubscriptionService = app.subscriptionService
	router.TenantService = app.tenantService
	router.UserService = app.userService
	router.InvitationService = app.invitationService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
