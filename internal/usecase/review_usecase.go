package usecase

import (
	"context"

	"hostelbites/internal/domain/entity"
)

// AddReviewInput is a review written by the authenticated user.
type AddReviewInput struct {
	AuthorEmail string `validate:"required,email"`
	AuthorName  string `validate:"max=100"`
	Text        string `validate:"required,max=2000"`
	Rating      int    `validate:"gte=1,lte=5"`
}

// ReviewUsecase records likes and reviews and projects reviews by author.
type ReviewUsecase interface {
	ListReviewsByUser(ctx context.Context, email string) ([]*entity.UserReview, error)
	AddReview(ctx context.Context, mealID string, input *AddReviewInput) (*entity.Review, error)

	// LikeMeal reports false when the user had already liked the meal.
	LikeMeal(ctx context.Context, mealID, email string) (bool, error)
	UnlikeMeal(ctx context.Context, mealID, email string) (bool, error)
}
