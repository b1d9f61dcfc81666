package cache

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hostelbites/internal/delivery/context"
	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	packagesKey      = "packages:all"
	packageKeyPrefix = "packages:name:"
)

// cachedPackageRepository serves package reads from the cache and falls back to the store.
// Cache failures are logged and never fail a read.
type cachedPackageRepository struct {
	next   repository.PackageRepository
	cache  service.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedPackageRepository decorates next with read-through caching.
func NewCachedPackageRepository(next repository.PackageRepository, cache service.Cache, ttl time.Duration, logger *slog.Logger) repository.PackageRepository {
	return &cachedPackageRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *cachedPackageRepository) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *cachedPackageRepository) FindByName(ctx context.Context, name string) (*entity.Package, error) {
	key := packageKeyPrefix + name

	var cached entity.Package
	if err := r.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, service.ErrCacheMiss) {
		r.log(ctx).Warn("Package cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	pkg, err := r.next.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, pkg)

	return pkg, nil
}

func (r *cachedPackageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	var cached []*entity.Package
	if err := r.cache.Get(ctx, packagesKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, service.ErrCacheMiss) {
		r.log(ctx).Warn("Package cache read failed", slog.String("key", packagesKey), slog.Any("error", err))
	}

	packages, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, packagesKey, packages)

	return packages, nil
}

// Create invalidates the listing so the new tier shows up before the TTL expires.
func (r *cachedPackageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	if err := r.next.Create(ctx, pkg); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, packagesKey); err != nil {
		r.log(ctx).Warn("Package cache invalidation failed", slog.Any("error", err))
	}
	if err := r.cache.Delete(ctx, packageKeyPrefix+pkg.Name); err != nil {
		r.log(ctx).Warn("Package cache invalidation failed", slog.Any("error", err))
	}

	return nil
}

func (r *cachedPackageRepository) store(ctx context.Context, key string, value any) {
	if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
		r.log(ctx).Warn("Package cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
