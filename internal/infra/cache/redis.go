// Package cache provides service.Cache implementations and the cached package catalog.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hostelbites/config"
	"hostelbites/internal/domain/lifecycle"
	"hostelbites/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies of the cache provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis cache when redis is configured, otherwise a cache that never hits.
func New(params Params) (service.Cache, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		params.Logger.Info("Redis not configured, package cache disabled")

		return NewNoopCache(), nil
	}

	opt, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}
	client := redis.NewClient(opt)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis connection established", slog.String("addr", opt.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client), nil
}

type redisCache struct {
	client redis.UniversalClient
}

// NewRedisCache wraps a redis client. Values are stored as JSON.
func NewRedisCache(client redis.UniversalClient) service.Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return service.ErrCacheMiss
		}

		return errors.Wrapf(err, "redis get %s", key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrapf(err, "decode cached %s", key)
	}

	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode cached %s", key)
	}

	return errors.Wrapf(c.client.Set(ctx, key, data, expiration).Err(), "redis set %s", key)
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(c.client.Del(ctx, key).Err(), "redis del %s", key)
}
