// Package redis opens the Redis connection used for refresh tokens.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"hackathon_backend/internal/platform/config"
)

// NewRedisClient connects and pings Redis. It returns nil, nil when Redis
// is disabled so callers can fall back to the database.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	if !cfg.Enabled {
		slog.Info("redis disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("redis connection successful", "address", cfg.Addr())
	return rdb, nil
}

// Ping adapts a client to a health check.
func Ping(rdb *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
