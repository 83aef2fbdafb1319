// Package container wires the application together with fx
package container

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	recipeapp "github.com/pantrychef/pantrychef/internal/application/recipe"
	userapp "github.com/pantrychef/pantrychef/internal/application/user"
	"github.com/pantrychef/pantrychef/internal/infrastructure/ai/gemini"
	"github.com/pantrychef/pantrychef/internal/infrastructure/config"
	"github.com/pantrychef/pantrychef/internal/infrastructure/enrichment/mealdb"
	"github.com/pantrychef/pantrychef/internal/infrastructure/enrichment/youtube"
	"github.com/pantrychef/pantrychef/internal/infrastructure/http/apiserver"
	"github.com/pantrychef/pantrychef/internal/infrastructure/http/handlers"
	persistencegorm "github.com/pantrychef/pantrychef/internal/infrastructure/persistence/gorm"
	"github.com/pantrychef/pantrychef/internal/infrastructure/persistence/postgres"
	"github.com/pantrychef/pantrychef/internal/infrastructure/persistence/sqlite"
	"github.com/pantrychef/pantrychef/internal/infrastructure/security"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
	"github.com/pantrychef/pantrychef/pkg/logger"
)

// Module is the complete application dependency graph
var Module = fx.Options(
	fx.Provide(
		newConfig,
		newLogger,
		newDatabase,
		newRedisClient,
		newCounterStore,
		security.NewAuthService,
		newRecipeGenerator,
		newVideoSearcher,
		newImageFinder,
		persistencegorm.NewUserRepository,
		persistencegorm.NewRecipeRepository,
		newUserService,
		newRecipeService,
		handlers.NewUserAPIHandler,
		handlers.NewRecipeAPIHandler,
		apiserver.NewServer,
	),
	fx.Invoke(registerServerHooks),
)

func newConfig() (*config.Config, error) {
	return config.Load(os.Getenv("PANTRYCHEF_CONFIG"))
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
}

func newDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		return postgres.NewDatabase(cfg, log)
	case "sqlite":
		return sqlite.NewDatabase(cfg.Database.Database, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func newRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.RateLimit.UseRedis {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr(),
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.Database,
		DialTimeout: cfg.Redis.DialTimeout,
		PoolSize:    cfg.Redis.PoolSize,
	})
}

func newCounterStore(lc fx.Lifecycle, cfg *config.Config, client *redis.Client, log *zap.Logger) security.CounterStore {
	if cfg.RateLimit.UseRedis && client != nil {
		return security.NewRedisStore(client, log)
	}
	store := security.NewMemoryStore()
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			store.Close()
			return nil
		},
	})
	return store
}

func newRecipeGenerator(cfg *config.Config, log *zap.Logger) outbound.RecipeGenerator {
	return gemini.NewClient(cfg, log)
}

func newVideoSearcher(cfg *config.Config, log *zap.Logger) outbound.VideoSearcher {
	return youtube.NewClient(cfg, log)
}

func newImageFinder(cfg *config.Config, log *zap.Logger) outbound.ImageFinder {
	return mealdb.NewClient(cfg, log)
}

func newUserService(users outbound.UserRepository, auth *security.AuthService, cfg *config.Config, log *zap.Logger) *userapp.Service {
	return userapp.NewService(users, auth, cfg.Auth.BCryptCost, log)
}

func newRecipeService(
	recipes outbound.RecipeRepository,
	users outbound.UserRepository,
	generator outbound.RecipeGenerator,
	videos outbound.VideoSearcher,
	images outbound.ImageFinder,
	cfg *config.Config,
	log *zap.Logger,
) *recipeapp.Service {
	return recipeapp.NewService(recipes, users, generator, videos, images, cfg.YouTube.MaxResults, log)
}

func registerServerHooks(lc fx.Lifecycle, server *apiserver.Server, cfg *config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Error("server stopped with error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
