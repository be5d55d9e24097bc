// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	groceryapp "github.com/nuestrasrecetas/club/internal/application/grocery"
	mealplanapp "github.com/nuestrasrecetas/club/internal/application/mealplan"
	recipeapp "github.com/nuestrasrecetas/club/internal/application/recipe"
	"github.com/nuestrasrecetas/club/internal/infrastructure/cache"
	"github.com/nuestrasrecetas/club/internal/infrastructure/config"
	"github.com/nuestrasrecetas/club/internal/infrastructure/http/server"
	gormRepo "github.com/nuestrasrecetas/club/internal/infrastructure/persistence/gorm"
	"github.com/nuestrasrecetas/club/internal/infrastructure/persistence/memory"
	"github.com/nuestrasrecetas/club/internal/infrastructure/persistence/postgres"
	"github.com/nuestrasrecetas/club/internal/infrastructure/persistence/sqlite"
	"github.com/nuestrasrecetas/club/internal/ports/outbound"
	"github.com/nuestrasrecetas/club/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection for the configured
// driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		switch cfg.Database.Driver {
		case "postgres":
			return postgres.Connect(&cfg.Database, log)
		case "sqlite":
			dbPath := ""
			if cfg.Database.Database != "" {
				dbPath = cfg.Database.Database + ".db"
			}

			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}

			db, err := sqlite.SetupDatabase(dbPath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}

			log.Info("Connected to SQLite database",
				zap.String("path", dbPath),
				zap.Bool("in_memory", dbPath == ""),
			)
			return db, nil
		default:
			return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
		}
	},
)

// CacheModule provides Redis when enabled, in-memory otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return cache.NewRedisRepository(&cfg.Redis, log)
		}
		log.Info("Redis disabled, using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewRecipeRepository,
	gormRepo.NewMealPlanRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	recipeapp.NewRecipeService,
	mealplanapp.NewMealPlanService,
	groceryapp.NewGroceryService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule registers start and stop hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting NuestrasRecetas application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping NuestrasRecetas application")
			return srv.Shutdown(ctx)
		},
	})
}
