package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortener-stats/internal/config/db"
	"github.com/avc-dev/shortener-stats/internal/handler"
	"github.com/avc-dev/shortener-stats/internal/migrations"
	"github.com/avc-dev/shortener-stats/internal/repository"
	"github.com/avc-dev/shortener-stats/internal/service"
	"github.com/avc-dev/shortener-stats/internal/store"
	"github.com/avc-dev/shortener-stats/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) error {
	backend, pinger, err := a.initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	backend = a.initCache(ctx, backend)

	repo := repository.New(backend)
	mappingService := service.NewMappingService(repo, a.config.Retry.MaxAttempts)
	urlUsecase := usecase.NewURLUsecase(mappingService, a.config, a.logger)
	h := handler.New(urlUsecase, a.logger, pinger)

	a.router = newRouter(h, a.logger)

	return nil
}

// initStorage выбирает хранилище: PostgreSQL, SQLite, файл или память
func (a *App) initStorage(ctx context.Context) (store.Backend, handler.Pinger, error) {
	cfg := a.config

	switch {
	case cfg.DatabaseDSN != "":
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbPool = database

		if err := migrations.NewMigrator(database.DB(), migrations.Postgres, a.logger).RunUp(); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		a.logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(database.Pool), database, nil

	case cfg.SQLitePath != "":
		sqliteStore, err := openSQLiteStore(cfg.SQLitePath, a.logger)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, sqliteStore)

		a.logger.Info("Using SQLite storage", zap.String("path", cfg.SQLitePath))
		return sqliteStore, sqliteStore, nil

	case cfg.FileStoragePath != "":
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}

		a.logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil, nil

	default:
		a.logger.Info("Using in-memory storage")
		return store.NewStore(), nil, nil
	}
}

// openSQLiteStore применяет миграции через отдельное соединение и открывает хранилище
func openSQLiteStore(path string, logger *zap.Logger) (*store.SQLiteStore, error) {
	migrationDB, err := store.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := migrations.NewMigrator(migrationDB, migrations.SQLite, logger).RunUp(); err != nil {
		migrationDB.Close()
		return nil, fmt.Errorf("failed to migrate SQLite database: %w", err)
	}

	sqlDB, err := store.OpenSQLite(path)
	if err != nil {
		return nil, err
	}

	return store.NewSQLiteStore(sqlDB), nil
}

// initCache оборачивает хранилище кэшем Redis, если он настроен и доступен
func (a *App) initCache(ctx context.Context, backend store.Backend) store.Backend {
	if a.config.RedisAddr == "" {
		return backend
	}

	client := redis.NewClient(&redis.Options{
		Addr: a.config.RedisAddr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		a.logger.Warn("Redis unavailable, cache disabled",
			zap.String("addr", a.config.RedisAddr),
			zap.Error(err),
		)
		client.Close()
		return backend
	}

	cached := store.NewCachedStore(backend, client, a.config.CacheTTL, a.logger)
	a.closers = append(a.closers, cached)

	a.logger.Info("Using Redis cache", zap.String("addr", a.config.RedisAddr), zap.Duration("ttl", a.config.CacheTTL))
	return cached
}
