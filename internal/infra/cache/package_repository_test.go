package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/domain/service"
	mockRepo "hostelbites/internal/mocks/repository"
	mockSvc "hostelbites/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTTL = 5 * time.Minute

func newTestRepo(t *testing.T) (repository.PackageRepository, *mockRepo.MockPackageRepository, *mockSvc.MockCache) {
	inner := mockRepo.NewMockPackageRepository(t)
	cache := mockSvc.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCachedPackageRepository(inner, cache, testTTL, logger), inner, cache
}

func TestCachedPackageRepository_FindByName_Hit(t *testing.T) {
	repo, _, cache := newTestRepo(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "packages:name:Gold", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, dest any) error {
			*dest.(*entity.Package) = entity.Package{Name: "Gold", Price: 50}

			return nil
		})

	pkg, err := repo.FindByName(ctx, "Gold")

	require.NoError(t, err)
	assert.Equal(t, int64(50), pkg.Price)
}

func TestCachedPackageRepository_FindByName_MissFillsCache(t *testing.T) {
	repo, inner, cache := newTestRepo(t)
	ctx := context.Background()
	gold := &entity.Package{Name: "Gold", Price: 50}

	cache.EXPECT().Get(ctx, "packages:name:Gold", mock.Anything).Return(service.ErrCacheMiss)
	inner.EXPECT().FindByName(ctx, "Gold").Return(gold, nil)
	cache.EXPECT().Set(ctx, "packages:name:Gold", gold, testTTL).Return(nil)

	pkg, err := repo.FindByName(ctx, "Gold")

	require.NoError(t, err)
	assert.Same(t, gold, pkg)
}

func TestCachedPackageRepository_FindByName_CacheErrorsDoNotFailRead(t *testing.T) {
	repo, inner, cache := newTestRepo(t)
	ctx := context.Background()
	gold := &entity.Package{Name: "Gold"}

	cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	inner.EXPECT().FindByName(ctx, "Gold").Return(gold, nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, testTTL).Return(errors.New("connection refused"))

	pkg, err := repo.FindByName(ctx, "Gold")

	require.NoError(t, err)
	assert.Same(t, gold, pkg)
}

func TestCachedPackageRepository_FindByName_NotFoundIsNotCached(t *testing.T) {
	repo, inner, cache := newTestRepo(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(service.ErrCacheMiss)
	inner.EXPECT().FindByName(ctx, "Platinum").Return(nil, repository.ErrPackageNotFound)

	_, err := repo.FindByName(ctx, "Platinum")

	assert.ErrorIs(t, err, repository.ErrPackageNotFound)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedPackageRepository_FindAll_Miss(t *testing.T) {
	repo, inner, cache := newTestRepo(t)
	ctx := context.Background()
	packages := []*entity.Package{{Name: "Silver", Price: 20}, {Name: "Gold", Price: 50}}

	cache.EXPECT().Get(ctx, "packages:all", mock.Anything).Return(service.ErrCacheMiss)
	inner.EXPECT().FindAll(ctx).Return(packages, nil)
	cache.EXPECT().Set(ctx, "packages:all", packages, testTTL).Return(nil)

	got, err := repo.FindAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, packages, got)
}

func TestCachedPackageRepository_CreateInvalidates(t *testing.T) {
	repo, inner, cache := newTestRepo(t)
	ctx := context.Background()
	pkg := &entity.Package{Name: "Platinum", Price: 100}

	inner.EXPECT().Create(ctx, pkg).Return(nil)
	cache.EXPECT().Delete(ctx, "packages:all").Return(nil)
	cache.EXPECT().Delete(ctx, "packages:name:Platinum").Return(nil)

	require.NoError(t, repo.Create(ctx, pkg))
}

func TestCachedPackageRepository_CreateFailureKeepsCache(t *testing.T) {
	repo, inner, cache := newTestRepo(t)
	ctx := context.Background()
	pkg := &entity.Package{Name: "Gold"}

	inner.EXPECT().Create(ctx, pkg).Return(repository.ErrPackageExists)

	err := repo.Create(ctx, pkg)

	assert.ErrorIs(t, err, repository.ErrPackageExists)
	cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNoopCache(t *testing.T) {
	cache := NewNoopCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

	var out string
	assert.ErrorIs(t, cache.Get(ctx, "k", &out), service.ErrCacheMiss)
	assert.NoError(t, cache.Delete(ctx, "k"))
}
