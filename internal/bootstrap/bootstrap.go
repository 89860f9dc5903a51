package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/courses/internal/app/controllers"
	appMigrations "github.com/yigit/courses/internal/app/migrations"
	appRepos "github.com/yigit/courses/internal/app/repositories"
	appRoutes "github.com/yigit/courses/internal/app/routes"
	appServices "github.com/yigit/courses/internal/app/services"
	"github.com/yigit/courses/internal/config"
	"github.com/yigit/courses/internal/db"
	appMiddleware "github.com/yigit/courses/internal/middleware"
	"github.com/yigit/courses/internal/pkg/logger"
	"github.com/yigit/courses/internal/pkg/metrics"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    appServices.CourseService
	CourseController *appControllers.CourseController
	HealthController *appControllers.HealthController
	Repos            *appRepos.Repositories
	Metrics          *metrics.Metrics // nil when metrics are disabled
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the Postgres pool and, when configured, applies migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if cfg.Database.MigrateOnStart {
		if err := RunMigrations(ctx, database.Pool, lgr); err != nil {
			database.Close()
			return nil, err
		}
	}

	return database.Pool, nil
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(pool, lgr)
	if err := migrator.Migrate(ctx, appMigrations.Embedded()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupRepositories picks the store named by storage.driver. The returned pool
// is nil for the memory driver.
func SetupRepositories(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *pgxpool.Pool, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case config.StorageDriverMemory:
		lgr.Warn().Msg("Using in-memory storage; data is lost on restart")
		return appRepos.NewMemoryRepositories(), nil, nil
	default:
		pool, err := SetupDatabase(ctx, cfg, lgr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to setup database: %w", err)
		}
		return appRepos.NewRepositories(pool), pool, nil
	}
}

// BuildDependencies initializes services and controllers on top of repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.NewMetrics()
	}

	deps.CourseService = appServices.NewCourseService(repos.CourseRepository)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.Metrics)
	deps.HealthController = appControllers.NewHealthController(deps.CourseService, strings.ToLower(cfg.Storage.Driver))

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Debug().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	if deps.Metrics != nil {
		router.Use(appMiddleware.Metrics(deps.Metrics))
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	router.Use(appMiddleware.RateLimit(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst))

	appRoutes.SetupRouter(router, appRoutes.CourseRoutes(deps.CourseController))

	router.GET("/healthz", deps.HealthController.Health)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
