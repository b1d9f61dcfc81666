package mongodb

import (
	"context"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type packageRepository struct {
	store Store
}

// NewPackageRepository creates a package repository on store.
func NewPackageRepository(store Store) repository.PackageRepository {
	return &packageRepository{store: store}
}

func (repo *packageRepository) FindByName(ctx context.Context, name string) (*entity.Package, error) {
	var doc packageDocument
	if err := repo.store.FindOne(ctx, CollectionPackages, bson.M{"name": name}, &doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, storeError(err, "find package by name")
	}

	return doc.toDomain(), nil
}

func (repo *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	var docs []packageDocument
	opts := FindOptions{Sort: bson.D{{Key: "price", Value: 1}}}
	if err := repo.store.Find(ctx, CollectionPackages, bson.M{}, opts, &docs); err != nil {
		return nil, storeError(err, "find packages")
	}

	packages := make([]*entity.Package, 0, len(docs))
	for i := range docs {
		packages = append(packages, docs[i].toDomain())
	}

	return packages, nil
}

func (repo *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	doc := &packageDocument{
		Name:     pkg.Name,
		Price:    pkg.Price,
		Level:    pkg.Level,
		Benefits: pkg.Benefits,
	}

	id, err := repo.store.InsertOne(ctx, CollectionPackages, doc)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrPackageExists
		}

		return storeError(err, "insert package")
	}
	pkg.ID = id

	return nil
}
