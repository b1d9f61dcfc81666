package usecase

import (
	"context"

	"hostelbites/internal/domain/entity"
)

// SubmitMealRequestInput identifies the meal and the requesting user.
type SubmitMealRequestInput struct {
	MealID    string `validate:"required"`
	UserEmail string `validate:"required,email"`
	UserName  string `validate:"max=100"`
}

// ListMealRequestsInput narrows the admin request listing.
type ListMealRequestsInput struct {
	Status string
	Search string
	Skip   int64
	Limit  int64
}

// MealRequestListOutput is one page of joined requests.
type MealRequestListOutput struct {
	Requests []*entity.MealRequestView `json:"requests"`
	Total    int64                     `json:"total"`
}

// MealRequestUsecase accepts, deduplicates and reports meal requests.
type MealRequestUsecase interface {
	SubmitRequest(ctx context.Context, input *SubmitMealRequestInput) (*entity.MealRequest, error)
	ListRequestsForUser(ctx context.Context, email string) ([]*entity.MealRequestView, error)

	ListRequests(ctx context.Context, input *ListMealRequestsInput) (*MealRequestListOutput, error)
	UpdateStatus(ctx context.Context, id string, status entity.MealRequestStatus) (*entity.MealRequest, error)
	CancelRequest(ctx context.Context, id, email string) error

	// GenerateTicketQR returns a PNG ticket for a request owned by email.
	GenerateTicketQR(ctx context.Context, id, email string) ([]byte, error)

	// ServeByTicket marks the request encoded in a scanned ticket as served.
	ServeByTicket(ctx context.Context, qrData string) (*entity.MealRequest, error)
}
