package usecase

import (
	"context"

	"hostelbites/internal/domain/entity"
)

// ListMealsInput holds catalog query parameters.
type ListMealsInput struct {
	Category string
	Search   string
	MinPrice float64
	MaxPrice float64
	Skip     int64
	Limit    int64
}

// MealListOutput is one page of meals and the total match count.
type MealListOutput struct {
	Meals []*entity.Meal `json:"meals"`
	Total int64          `json:"total"`
	Skip  int64          `json:"skip"`
	Limit int64          `json:"limit"`
}

// CreateMealInput defines a new catalog meal.
type CreateMealInput struct {
	Title            string   `validate:"required,max=200"`
	Category         string   `validate:"required,max=50"`
	Price            float64  `validate:"gte=0"`
	Description      string   `validate:"max=2000"`
	Image            string   `validate:"omitempty,url"`
	Ingredients      []string `validate:"dive,required"`
	DistributorEmail string   `validate:"omitempty,email"`
}

// CreatePackageInput defines a new subscription tier.
type CreatePackageInput struct {
	Name     string   `validate:"required,max=50"`
	Price    int64    `validate:"gt=0"`
	Level    int      `validate:"gte=0"`
	Benefits []string `validate:"dive,required"`
}

// CatalogUsecase serves meals and subscription packages.
type CatalogUsecase interface {
	ListMeals(ctx context.Context, input *ListMealsInput) (*MealListOutput, error)
	GetMeal(ctx context.Context, id string) (*entity.Meal, error)
	CreateMeal(ctx context.Context, input *CreateMealInput) (*entity.Meal, error)

	ListPackages(ctx context.Context) ([]*entity.Package, error)
	GetPackage(ctx context.Context, name string) (*entity.Package, error)
	CreatePackage(ctx context.Context, input *CreatePackageInput) (*entity.Package, error)
}
