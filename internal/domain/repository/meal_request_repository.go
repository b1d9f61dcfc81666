package repository

import (
	"context"
	"errors"

	"hostelbites/internal/domain/entity"
)

var (
	// ErrMealRequestNotFound is returned when no request matches the id.
	ErrMealRequestNotFound = errors.New("meal request not found")

	// ErrDuplicateMealRequest is returned when the store rejects a second request under the dedupe key.
	ErrDuplicateMealRequest = errors.New("duplicate meal request")
)

// MealRequestRepository persists meal requests and serves the joined read model.
type MealRequestRepository interface {
	// Exists reports whether a request matching key is stored.
	Exists(ctx context.Context, key entity.MealRequestKey) (bool, error)

	// Create inserts a request and assigns its ID.
	Create(ctx context.Context, req *entity.MealRequest) error

	FindByID(ctx context.Context, id string) (*entity.MealRequest, error)

	// UpdateStatus sets the status of the request with the given id.
	UpdateStatus(ctx context.Context, id string, status entity.MealRequestStatus) error

	// TransitionStatus moves the request from one status to another in a single conditional write.
	// It reports false when the request does not exist or is no longer in from.
	TransitionStatus(ctx context.Context, id string, from, to entity.MealRequestStatus) (bool, error)

	// Delete removes the request with the given id.
	Delete(ctx context.Context, id string) error

	// ListViewsByUser joins every request of email with its meal's title, like count and review count.
	ListViewsByUser(ctx context.Context, email string) ([]*entity.MealRequestView, error)

	// ListViews joins requests matching the filter with their meals and returns the total match count.
	ListViews(ctx context.Context, filter entity.MealRequestFilter) ([]*entity.MealRequestView, int64, error)
}
