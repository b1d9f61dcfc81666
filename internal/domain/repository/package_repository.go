package repository

import (
	"context"
	"errors"

	"hostelbites/internal/domain/entity"
)

var (
	// ErrPackageNotFound is returned when no package matches the name.
	ErrPackageNotFound = errors.New("package not found")

	// ErrPackageExists is returned when a package name is already taken.
	ErrPackageExists = errors.New("package already exists")
)

// PackageRepository persists the subscription package catalog.
type PackageRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Package, error)

	// FindAll returns every package ordered by price ascending.
	FindAll(ctx context.Context) ([]*entity.Package, error)

	Create(ctx context.Context, pkg *entity.Package) error
}
