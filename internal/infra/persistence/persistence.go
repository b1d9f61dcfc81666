// Package persistence selects the store backend and provides the repositories built on it.
package persistence

import (
	"log/slog"

	"hostelbites/config"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/domain/service"
	"hostelbites/internal/infra/cache"
	"hostelbites/internal/infra/persistence/mongodb"
	"hostelbites/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the repository provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Cache  service.Cache
}

// Repositories is the set of repositories bound to the configured backend.
type Repositories struct {
	fx.Out

	UserRepo        repository.UserRepository
	PackageRepo     repository.PackageRepository
	MealRepo        repository.MealRepository
	PaymentRepo     repository.PaymentRepository
	MealRequestRepo repository.MealRequestRepository
	TxManager       repository.TransactionManager
}

// New connects to the backend named by store.driver and builds every repository on it.
// Package reads go through the cache.
func New(params Params) (Repositories, error) {
	var (
		repos Repositories
		err   error
	)

	switch params.Config.Store.Driver {
	case config.StoreDriverMongo, "":
		repos, err = newMongoRepositories(params)
	case config.StoreDriverPostgres:
		repos, err = newPostgresRepositories(params)
	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", params.Config.Store.Driver)
	}
	if err != nil {
		return Repositories{}, err
	}

	repos.PackageRepo = cache.NewCachedPackageRepository(repos.PackageRepo, params.Cache, params.Config.Cache.PackageTTL, params.Logger)

	params.Logger.Info("Persistence ready", slog.String("driver", params.Config.Store.Driver))

	return repos, nil
}

func newMongoRepositories(params Params) (Repositories, error) {
	client, err := mongodb.New(mongodb.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	store := mongodb.NewStore(mongodb.NewDatabase(client, params.Config))

	return Repositories{
		UserRepo:        mongodb.NewUserRepository(store),
		PackageRepo:     mongodb.NewPackageRepository(store),
		MealRepo:        mongodb.NewMealRepository(store),
		PaymentRepo:     mongodb.NewPaymentRepository(store),
		MealRequestRepo: mongodb.NewMealRequestRepository(store),
		TxManager:       mongodb.NewTransactionManager(client, store, params.Config),
	}, nil
}

func newPostgresRepositories(params Params) (Repositories, error) {
	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		UserRepo:        postgres.NewUserRepository(db),
		PackageRepo:     postgres.NewPackageRepository(db),
		MealRepo:        postgres.NewMealRepository(db),
		PaymentRepo:     postgres.NewPaymentRepository(db),
		MealRequestRepo: postgres.NewMealRequestRepository(db),
		TxManager:       postgres.NewTransactionManager(db),
	}, nil
}
