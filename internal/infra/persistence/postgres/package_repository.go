package postgres

import (
	"context"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a package repository using GORM.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{db: db}
}

func (repo *packageRepository) FindByName(ctx context.Context, name string) (*entity.Package, error) {
	var pkgM model.PackageModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&pkgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, storeError(err, "find package by name")
	}

	return toPackageDomain(&pkgM), nil
}

func (repo *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	var pkgMs []model.PackageModel
	if err := repo.db.WithContext(ctx).Order("price ASC").Find(&pkgMs).Error; err != nil {
		return nil, storeError(err, "find packages")
	}

	packages := make([]*entity.Package, 0, len(pkgMs))
	for i := range pkgMs {
		packages = append(packages, toPackageDomain(&pkgMs[i]))
	}

	return packages, nil
}

func (repo *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	pkgM := &model.PackageModel{
		Name:     pkg.Name,
		Price:    pkg.Price,
		Level:    pkg.Level,
		Benefits: datatypes.NewJSONSlice(pkg.Benefits),
	}
	if err := repo.db.WithContext(ctx).Create(pkgM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPackageExists
		}

		return storeError(err, "insert package")
	}
	pkg.ID = pkgM.ID.String()

	return nil
}

func toPackageDomain(m *model.PackageModel) *entity.Package {
	return &entity.Package{
		ID:       m.ID.String(),
		Name:     m.Name,
		Price:    m.Price,
		Level:    m.Level,
		Benefits: []string(m.Benefits),
	}
}
