package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "hostelbites/internal/delivery/context"
	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	mealRepo repository.MealRepository
	logger   *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	MealRepo repository.MealRepository
	Logger   *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		mealRepo: params.MealRepo,
		logger:   params.Logger,
	}
}

func (s *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListReviewsByUser returns every review written by email, each with its meal's title and current like count.
func (s *reviewService) ListReviewsByUser(ctx context.Context, email string) ([]*entity.UserReview, error) {
	email, err := requireEmail(email)
	if err != nil {
		return nil, err
	}

	reviews, err := s.mealRepo.FindReviewsByAuthor(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to project reviews by author")
	}

	return reviews, nil
}

// AddReview appends a review to a meal
func (s *reviewService) AddReview(ctx context.Context, mealID string, input *usecase.AddReviewInput) (*entity.Review, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	input.AuthorEmail = normalizeEmail(input.AuthorEmail)
	input.Text = strings.TrimSpace(input.Text)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	review := entity.Review{
		AuthorEmail: input.AuthorEmail,
		AuthorName:  strings.TrimSpace(input.AuthorName),
		Text:        input.Text,
		Rating:      input.Rating,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.mealRepo.AppendReview(ctx, mealID, review); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMealNotFound)
		}

		return nil, errors.Wrap(err, "failed to append review")
	}

	s.log(ctx).Info("Review added", slog.String("meal_id", mealID), slog.Int("rating", review.Rating))

	return &review, nil
}

// LikeMeal adds the user to the meal's like set
func (s *reviewService) LikeMeal(ctx context.Context, mealID, email string) (bool, error) {
	email, err := requireEmail(email)
	if err != nil {
		return false, err
	}

	liked, err := s.mealRepo.AddLike(ctx, mealID, email)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return false, errors.WithStack(domainerrors.ErrMealNotFound)
		}

		return false, errors.Wrap(err, "failed to like meal")
	}

	return liked, nil
}

// UnlikeMeal removes the user from the meal's like set
func (s *reviewService) UnlikeMeal(ctx context.Context, mealID, email string) (bool, error) {
	email, err := requireEmail(email)
	if err != nil {
		return false, err
	}

	removed, err := s.mealRepo.RemoveLike(ctx, mealID, email)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return false, errors.WithStack(domainerrors.ErrMealNotFound)
		}

		return false, errors.Wrap(err, "failed to unlike meal")
	}

	return removed, nil
}
