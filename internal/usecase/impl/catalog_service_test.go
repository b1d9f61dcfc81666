package impl

import (
	"context"
	"testing"

	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/repository"
	mockRepo "hostelbites/internal/mocks/repository"
	"hostelbites/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	mealRepo    *mockRepo.MockMealRepository
	packageRepo *mockRepo.MockPackageRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	mealRepo := mockRepo.NewMockMealRepository(t)
	packageRepo := mockRepo.NewMockPackageRepository(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			MealRepo:    mealRepo,
			PackageRepo: packageRepo,
			Config:      newTestConfig(""),
			Logger:      newDiscardLogger(),
		}),
		mealRepo:    mealRepo,
		packageRepo: packageRepo,
	}
}

func TestCatalogService_ListMeals(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.mealRepo.EXPECT().List(ctx, entity.MealFilter{
		Category: "Lunch",
		Search:   "rice",
		MaxPrice: 10,
		Page:     entity.Page{Skip: 20, Limit: 20},
	}).Return([]*entity.Meal{{ID: "m1"}}, int64(21), nil)

	out, err := fx.service.ListMeals(ctx, &usecase.ListMealsInput{
		Category: " Lunch ",
		Search:   "rice",
		MaxPrice: 10,
		Skip:     20,
		Limit:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), out.Total)
	assert.Equal(t, int64(20), out.Limit)
}

func TestCatalogService_ListMeals_DefaultsToMealPageSize(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.mealRepo.EXPECT().List(ctx, entity.MealFilter{Page: entity.Page{Limit: 3}}).
		Return([]*entity.Meal{{ID: "m1"}, {ID: "m2"}, {ID: "m3"}}, int64(7), nil)

	out, err := fx.service.ListMeals(ctx, &usecase.ListMealsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Meals, 3)
	assert.Equal(t, int64(3), out.Limit)
}

func TestCatalogService_ListMeals_InvalidInput(t *testing.T) {
	inputs := map[string]*usecase.ListMealsInput{
		"negative skip":  {Skip: -1},
		"inverted range": {MinPrice: 10, MaxPrice: 5},
		"negative price": {MinPrice: -1},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			_, err := fx.service.ListMeals(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_GetMeal_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.mealRepo.EXPECT().FindByID(ctx, "m1").Return(nil, repository.ErrMealNotFound)

	_, err := fx.service.GetMeal(ctx, "m1")
	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
}

func TestCatalogService_CreateMeal(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.mealRepo.EXPECT().Create(ctx, mock.MatchedBy(func(m *entity.Meal) bool {
		return m.Title == "Biryani" && m.Likes != nil && m.Reviews != nil && m.DistributorEmail == "chef@example.com"
	})).Return(nil)

	meal, err := fx.service.CreateMeal(ctx, &usecase.CreateMealInput{
		Title:            " Biryani ",
		Category:         "Lunch",
		Price:            4.5,
		DistributorEmail: "Chef@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, meal.LikeCount())
	assert.Equal(t, 0, meal.ReviewCount())
}

func TestCatalogService_CreateMeal_Invalid(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateMeal(context.Background(), &usecase.CreateMealInput{Category: "Lunch"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_Packages(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	packages := []*entity.Package{{Name: "Silver", Price: 300}, {Name: "Gold", Price: 500}}
	fx.packageRepo.EXPECT().FindAll(ctx).Return(packages, nil)
	fx.packageRepo.EXPECT().FindByName(ctx, "Platinum").Return(nil, repository.ErrPackageNotFound)

	got, err := fx.service.ListPackages(ctx)
	require.NoError(t, err)
	assert.Equal(t, packages, got)

	_, err = fx.service.GetPackage(ctx, "Platinum")
	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestCatalogService_CreatePackage_Duplicate(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.packageRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrPackageExists)

	_, err := fx.service.CreatePackage(ctx, &usecase.CreatePackageInput{Name: "Gold", Price: 500, Level: 2})
	assert.ErrorIs(t, err, domainerrors.ErrPackageAlreadyExists)
}
