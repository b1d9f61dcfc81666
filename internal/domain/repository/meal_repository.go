package repository

import (
	"context"
	"errors"

	"hostelbites/internal/domain/entity"
)

// ErrMealNotFound is returned when no meal matches the id.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository persists meals together with their embedded likes and reviews.
type MealRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Meal, error)

	// List returns one page of meals matching the filter and the total match count.
	List(ctx context.Context, filter entity.MealFilter) ([]*entity.Meal, int64, error)

	Create(ctx context.Context, meal *entity.Meal) error

	// AddLike adds email to the meal's like set. It reports false when the email was already present.
	AddLike(ctx context.Context, mealID, email string) (bool, error)

	// RemoveLike removes email from the meal's like set. It reports false when the email was absent.
	RemoveLike(ctx context.Context, mealID, email string) (bool, error)

	// AppendReview appends a review to the meal.
	AppendReview(ctx context.Context, mealID string, review entity.Review) error

	// FindReviewsByAuthor returns one record per review written by email across all meals.
	FindReviewsByAuthor(ctx context.Context, email string) ([]*entity.UserReview, error)
}
