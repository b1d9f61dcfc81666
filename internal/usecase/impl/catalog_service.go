package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hostelbites/config"
	deliverycontext "hostelbites/internal/delivery/context"
	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	mealRepo    repository.MealRepository
	packageRepo repository.PackageRepository
	config      *config.Config
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	MealRepo    repository.MealRepository
	PackageRepo repository.PackageRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		mealRepo:    params.MealRepo,
		packageRepo: params.PackageRepo,
		config:      params.Config,
		logger:      params.Logger,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListMeals returns one page of meals matching the catalog filters
func (s *catalogService) ListMeals(ctx context.Context, input *usecase.ListMealsInput) (*usecase.MealListOutput, error) {
	if input == nil {
		input = &usecase.ListMealsInput{}
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.mealPageSize()
	}

	page, err := newPage(s.config, input.Skip, limit)
	if err != nil {
		return nil, err
	}
	if input.MinPrice < 0 || input.MaxPrice < 0 || (input.MaxPrice > 0 && input.MinPrice > input.MaxPrice) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid price range"))
	}

	filter := entity.MealFilter{
		Category: strings.TrimSpace(input.Category),
		Search:   strings.TrimSpace(input.Search),
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Page:     page,
	}

	meals, total, err := s.mealRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	return &usecase.MealListOutput{
		Meals: meals,
		Total: total,
		Skip:  page.Skip,
		Limit: page.Limit,
	}, nil
}

func (s *catalogService) mealPageSize() int64 {
	if s.config == nil || s.config.Catalog.MealPageSize <= 0 {
		return 3
	}

	return int64(s.config.Catalog.MealPageSize)
}

// GetMeal returns a single meal with its likes and reviews
func (s *catalogService) GetMeal(ctx context.Context, id string) (*entity.Meal, error) {
	meal, err := s.mealRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMealNotFound)
		}

		return nil, errors.Wrap(err, "failed to find meal")
	}

	return meal, nil
}

// CreateMeal adds a meal to the catalog
func (s *catalogService) CreateMeal(ctx context.Context, input *usecase.CreateMealInput) (*entity.Meal, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	meal := &entity.Meal{
		Title:            strings.TrimSpace(input.Title),
		Category:         strings.TrimSpace(input.Category),
		Price:            input.Price,
		Description:      input.Description,
		Image:            input.Image,
		Ingredients:      input.Ingredients,
		DistributorEmail: normalizeEmail(input.DistributorEmail),
		Likes:            []string{},
		Reviews:          []entity.Review{},
		PostedAt:         time.Now().UTC(),
	}

	if err := s.mealRepo.Create(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to create meal")
	}

	s.log(ctx).Info("Meal created", slog.String("meal_id", meal.ID), slog.String("category", meal.Category))

	return meal, nil
}

// ListPackages returns the subscription tiers ordered by price
func (s *catalogService) ListPackages(ctx context.Context) ([]*entity.Package, error) {
	packages, err := s.packageRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	return packages, nil
}

// GetPackage returns a subscription tier by name
func (s *catalogService) GetPackage(ctx context.Context, name string) (*entity.Package, error) {
	pkg, err := s.packageRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPackageNotFound)
		}

		return nil, errors.Wrap(err, "failed to find package")
	}

	return pkg, nil
}

// CreatePackage adds a subscription tier
func (s *catalogService) CreatePackage(ctx context.Context, input *usecase.CreatePackageInput) (*entity.Package, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	pkg := &entity.Package{
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Level:    input.Level,
		Benefits: input.Benefits,
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrPackageExists) {
			return nil, errors.WithStack(domainerrors.ErrPackageAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create package")
	}

	s.log(ctx).Info("Package created", slog.String("package", pkg.Name), slog.Int64("price", pkg.Price))

	return pkg, nil
}
