package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/studentforce/internal/app/controllers"
	appMigrations "github.com/yigit/studentforce/internal/app/migrations"
	appRepos "github.com/yigit/studentforce/internal/app/repositories"
	appRoutes "github.com/yigit/studentforce/internal/app/routes"
	appServices "github.com/yigit/studentforce/internal/app/services"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/config"
	"github.com/yigit/studentforce/internal/db"
	appMiddleware "github.com/yigit/studentforce/internal/middleware"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/filestorage"
	"github.com/yigit/studentforce/internal/pkg/idgen"
	"github.com/yigit/studentforce/internal/pkg/logger"
	"github.com/yigit/studentforce/internal/pkg/websocket"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store       *store.Store
	Repository  *appRepos.SnapshotRepository
	Services    *appServices.Services
	Hub         *websocket.Hub
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger

	storageName string
	ping        appControllers.Pinger
	closers     []func()
	detachFeed  func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// storageBackend is an opened snapshot transport together with its health
// check and cleanup
type storageBackend struct {
	backend appRepos.Backend
	ping    appControllers.Pinger
	close   func()
}

// setupStorage opens the transport selected by storage.driver. The postgres
// driver also applies the embedded migrations.
func setupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*storageBackend, error) {
	driver := strings.ToLower(cfg.Storage.Driver)
	lgr.Info().Str("driver", driver).Str("key", cfg.Storage.Key).Msg("Opening snapshot storage...")

	switch driver {
	case config.DriverMemory:
		return &storageBackend{backend: appRepos.NewMemoryBackend(), close: func() {}}, nil

	case config.DriverFile:
		local, err := filestorage.NewLocalStorage(cfg.Storage.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		return &storageBackend{backend: appRepos.NewFileBackend(local, cfg.Storage.Key), close: func() {}}, nil

	case config.DriverPostgres:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(database.Pool, lgr).MigrateEmbedded(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		return &storageBackend{
			backend: appRepos.NewPostgresBackend(database.Pool, cfg.Storage.Key),
			ping:    database.Ping,
			close:   database.Close,
		}, nil

	case config.DriverRedis:
		client, err := db.NewRedisDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to redis")
			return nil, err
		}
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection successfully established.")

		return &storageBackend{
			backend: appRepos.NewRedisBackend(client.Client, cfg.Storage.Key),
			ping:    client.Ping,
			close: func() {
				if err := client.Close(); err != nil {
					lgr.Warn().Err(err).Msg("Error closing redis client")
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedDriver, cfg.Storage.Driver)
}

// BuildDependencies opens storage, hydrates the store and wires services,
// the change feed and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, detachFeed: func() {}}

	storage, err := setupStorage(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.storageName = storage.backend.Name()
	deps.ping = storage.ping
	deps.closers = append(deps.closers, storage.close)

	deps.Repository = appRepos.NewSnapshotRepository(storage.backend, logger.Component("repository"))
	deps.Store, err = store.Open(ctx, deps.Repository,
		store.WithLogger(logger.Component("store")),
		store.WithIDGenerator(idgen.New(cfg.IDs.Generator, cfg.IDs.Prefix)),
	)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	deps.Services = appServices.New(deps.Store, appServices.ReportOptions{
		RecentLimit:    cfg.Reports.RecentLimit,
		TopDepartments: cfg.Reports.TopDepartments,
	})

	if cfg.Storage.ArchiveImports {
		archive, err := filestorage.NewLocalStorage(cfg.Storage.Dir)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to initialize import archive: %w", err)
		}
		deps.Services.Settings.WithArchive(archive, logger.Component("settings"))
	}

	deps.Hub = websocket.NewHub(logger.Component("websocket"))
	deps.detachFeed = deps.Hub.Attach(deps.Store)

	deps.Controllers = appRoutes.Controllers{
		Students:    appControllers.NewStudentController(deps.Services.Students),
		Courses:     appControllers.NewCourseController(deps.Services.Courses),
		Professors:  appControllers.NewProfessorController(deps.Services.Professors),
		Enrollments: appControllers.NewEnrollmentController(deps.Services.Enrollments),
		Marks:       appControllers.NewMarkController(deps.Services.Marks),
		Assignments: appControllers.NewAssignmentController(deps.Services.Assignments),
		Reports:     appControllers.NewReportController(deps.Services.Reports),
		Settings:    appControllers.NewSettingsController(deps.Services.Settings, logger.Component("settings")),
		Health:      appControllers.NewHealthController(deps.Store, deps.Hub, deps.storageName, deps.ping),
		Feed:        websocket.NewHandler(deps.Hub, logger.Component("websocket")).HandleConnection,
	}

	return deps, nil
}

// Close detaches the change feed and releases storage connections
func (d *Dependencies) Close() {
	if d.detachFeed != nil {
		d.detachFeed()
	}
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	httpLog := logger.Component("http")
	router.Use(appMiddleware.Recovery(httpLog), appMiddleware.RequestLogger(httpLog))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, cfg.Server.MaxUploadBytes)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
