package cache

import (
	"context"
	"time"

	"hostelbites/internal/domain/service"
)

type noopCache struct{}

// NewNoopCache returns a cache that stores nothing and always misses.
func NewNoopCache() service.Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) error {
	return service.ErrCacheMiss
}

func (noopCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (noopCache) Delete(context.Context, string) error {
	return nil
}
