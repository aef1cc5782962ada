package main

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"facility-console/internal/store"
	"facility-console/pkg/config"
	"facility-console/pkg/database/postgresql"
	"facility-console/pkg/database/sqlite"
	"facility-console/pkg/filestorage"
)

const redisStorePrefix = "facility:"

func newRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Address, err)
	}
	return client, nil
}

// openStore opens the configured collection store. SQL drivers are migrated
// on open. redisClient is only used by the redis driver.
func openStore(ctx context.Context, cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) (store.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		logger.Warn("store: memory driver, data is lost on restart")
		return store.NewMemoryStore(), nil
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("store: sqlite", zap.String("path", cfg.Store.SQLitePath))
		return store.NewSQLiteStore(db), nil
	case "postgres":
		pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		if err := postgresql.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("store: postgres")
		return store.NewPostgresStore(pool), nil
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("store driver redis needs a redis client")
		}
		logger.Info("store: redis", zap.String("address", cfg.Redis.Address))
		return store.NewRedisStore(redisClient, redisStorePrefix), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

func openFileStorage(ctx context.Context, cfg config.FileStorageConfig, logger *zap.Logger) (filestorage.FileStorageInterface, error) {
	switch cfg.Driver {
	case "local":
		logger.Info("file storage: local", zap.String("dir", cfg.UploadDir))
		return filestorage.NewLocalFileStorage(cfg.UploadDir)
	case "s3":
		logger.Info("file storage: s3", zap.String("bucket", cfg.S3Bucket))
		return filestorage.NewS3FileStorage(ctx, filestorage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown FILE_STORAGE_DRIVER %q", cfg.Driver)
	}
}
