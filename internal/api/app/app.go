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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aussiebroadwan/restbook/internal/api/filestore"
	httpapi "github.com/aussiebroadwan/restbook/internal/api/http"
	"github.com/aussiebroadwan/restbook/internal/api/service"
	"github.com/aussiebroadwan/restbook/internal/api/store"
	"github.com/aussiebroadwan/restbook/internal/api/store/drivers/sqlite"
	"github.com/aussiebroadwan/restbook/pkg/cryptox"
	"github.com/aussiebroadwan/restbook/pkg/httpx"
	"github.com/aussiebroadwan/restbook/pkg/jwtx"
	"github.com/aussiebroadwan/restbook/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application owns the API's dependencies and HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	signer  *jwtx.HMACSigner
	backend filestore.Backend

	authService         *service.AuthService
	personService       *service.PersonService
	bookService         *service.BookService
	fileService         *service.FileService
	housekeepingService *service.HousekeepingService

	registry *prometheus.Registry
	server   *http.Server
	router   *httpapi.Router
}

// New builds an Application. Configuration problems (missing secret,
// unusable storage) fail here rather than on the first request.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "restbook-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, err := jwtx.NewHMACSigner(jwtx.HMACConfig{
		Secret:   []byte(cfg.TokenSecret),
		Issuer:   cfg.TokenIssuer,
		Audience: cfg.TokenAudience,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer

	cryptox.SetPepperPath(cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := app.initStorage(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.ensureAdmin(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		_ = app.stopBackground()
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

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.stopBackground(); err != nil {
		return err
	}

	app.logger.Info("api stopped")
	return nil
}

// stopBackground stops housekeeping and closes the database. Both the signal
// path and a failed listener end here.
func (app *Application) stopBackground() error {
	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

func (app *Application) initDatabase() error {
	dsn := app.cfg.DatabaseFile
	if dsn != ":memory:" {
		dsn = sqlite.FileDSN(app.cfg.DatabaseFile)
	}

	db, err := sqlite.NewStore(dsn)
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

func (app *Application) initStorage(ctx context.Context) error {
	switch app.cfg.UploadBackend {
	case "s3":
		backend, err := filestore.NewS3(ctx, filestore.S3Config{
			Bucket:          app.cfg.S3Bucket,
			Region:          app.cfg.S3Region,
			Endpoint:        app.cfg.S3Endpoint,
			AccessKeyID:     app.cfg.S3AccessKeyID,
			SecretAccessKey: app.cfg.S3SecretAccessKey,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		app.backend = backend
		app.logger.Info("file storage ready", "backend", "s3", "bucket", app.cfg.S3Bucket)
	case "disk", "":
		backend, err := filestore.NewDisk(app.cfg.UploadDir)
		if err != nil {
			return fmt.Errorf("failed to initialize upload directory: %w", err)
		}
		app.backend = backend
		app.logger.Info("file storage ready", "backend", "disk", "dir", app.cfg.UploadDir)
	default:
		return fmt.Errorf("unknown UPLOAD_BACKEND %q", app.cfg.UploadBackend)
	}
	return nil
}

// ensureAdmin creates the configured admin account on first start. Without
// ADMIN_PASSWORD a random one is generated and logged once.
func (app *Application) ensureAdmin(ctx context.Context) error {
	if app.cfg.AdminUsername == "" {
		return nil
	}

	password, generated := app.cfg.AdminPassword, false
	if password == "" {
		p, err := cryptox.GeneratePassword()
		if err != nil {
			return fmt.Errorf("failed to generate admin password: %w", err)
		}
		password, generated = p, true
	}

	users := &service.UserService{Store: app.db}
	created, err := users.EnsureUser(ctx, app.cfg.AdminUsername, app.cfg.AdminFullName, password)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	if !created {
		return nil
	}

	if generated {
		app.logger.Warn("admin account created with generated password",
			"username", app.cfg.AdminUsername, "password", password)
		return nil
	}
	app.logger.Info("admin account created", "username", app.cfg.AdminUsername)
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Signer:     app.signer,
		AccessTTL:  app.cfg.AccessTokenTTL,
		RefreshTTL: app.cfg.RefreshTokenTTL,
	}
	app.personService = &service.PersonService{Store: app.db}
	app.bookService = &service.BookService{Store: app.db}
	app.fileService = &service.FileService{Store: app.db, Backend: app.backend}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := httpapi.NewRouter(app.signer, BuildVersion, app.db, app.logger)
	router.Metrics = httpx.NewMetrics("restbook-api", app.registry)
	router.CORSOrigins = app.cfg.CORSAllowedOrigins
	router.MaxUploadBytes = app.cfg.MaxUploadBytes

	router.AuthService = app.authService
	router.PersonService = app.personService
	router.BookService = app.bookService
	router.FileService = app.fileService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
