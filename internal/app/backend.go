package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MrSnakeDoc/catalog/internal/config"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/deps"
	"github.com/MrSnakeDoc/catalog/internal/logger"
	"github.com/MrSnakeDoc/catalog/internal/redis"
	"github.com/MrSnakeDoc/catalog/internal/store"
	"github.com/MrSnakeDoc/catalog/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/catalog/internal/store/redis"
	"github.com/MrSnakeDoc/catalog/internal/store/sqlite"
)

// backend is an opened store: its repositories, a readiness probe and the
// resource to release at shutdown (nil for memory).
type backend struct {
	name   string
	repos  store.Repositories
	ping   deps.Pinger
	closer io.Closer
}

func openBackend(ctx context.Context, cfg *config.Config, log logger.Logger) (*backend, error) {
	switch cfg.Store {
	case config.StoreRedis:
		log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.Connect(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return &backend{
			name:   config.StoreRedis,
			repos:  redisstore.New(client),
			ping:   func(ctx context.Context) error { return client.Ping(ctx).Err() },
			closer: client,
		}, nil

	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("sqlite store opened", logger.String("path", db.Path()))
		return &backend{
			name:   config.StoreSQLite,
			repos:  db.Repositories(),
			ping:   db.Ping,
			closer: db,
		}, nil

	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return &backend{name: config.StoreMemory, repos: memory.New()}, nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}
