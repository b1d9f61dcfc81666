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
	"hostelbites/internal/domain/service"
	"hostelbites/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type mealRequestService struct {
	requestRepo   repository.MealRequestRepository
	mealRepo      repository.MealRepository
	qrcodeService service.QRCodeService
	publisher     service.EventPublisher
	dedupeScope   string
	config        *config.Config
	logger        *slog.Logger
}

// MealRequestServiceParams holds dependencies for MealRequestService, injected by Fx.
type MealRequestServiceParams struct {
	fx.In

	RequestRepo   repository.MealRequestRepository
	MealRepo      repository.MealRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewMealRequestService creates a new meal request service instance
func NewMealRequestService(params MealRequestServiceParams) usecase.MealRequestUsecase {
	scope := config.DedupeScopeMeal
	if params.Config != nil && params.Config.MealRequest.DedupeScope != "" {
		scope = params.Config.MealRequest.DedupeScope
	}

	return &mealRequestService{
		requestRepo:   params.RequestRepo,
		mealRepo:      params.MealRepo,
		qrcodeService: params.QRCodeService,
		publisher:     params.Publisher,
		dedupeScope:   scope,
		config:        params.Config,
		logger:        params.Logger,
	}
}

func (s *mealRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// dedupeKey builds the uniqueness key for the configured scope.
func (s *mealRequestService) dedupeKey(mealID, email string) entity.MealRequestKey {
	key := entity.MealRequestKey{MealID: mealID}
	if s.dedupeScope == config.DedupeScopeMealUser {
		key.UserEmail = email
	}

	return key
}

// SubmitRequest records a pending request for a meal unless one already exists under the dedupe key.
func (s *mealRequestService) SubmitRequest(ctx context.Context, input *usecase.SubmitMealRequestInput) (*entity.MealRequest, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	input.UserEmail = normalizeEmail(input.UserEmail)
	input.MealID = strings.TrimSpace(input.MealID)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	meal, err := s.mealRepo.FindByID(ctx, input.MealID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMealNotFound)
		}

		return nil, errors.Wrap(err, "failed to find requested meal")
	}

	exists, err := s.requestRepo.Exists(ctx, s.dedupeKey(meal.ID, input.UserEmail))
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing meal request")
	}
	if exists {
		s.log(ctx).Info("Duplicate meal request rejected",
			slog.String("meal_id", meal.ID),
			slog.String("email", input.UserEmail),
			slog.String("scope", s.dedupeScope),
		)

		return nil, errors.WithStack(domainerrors.ErrDuplicateRequest)
	}

	req := &entity.MealRequest{
		MealID:      meal.ID,
		UserEmail:   input.UserEmail,
		UserName:    strings.TrimSpace(input.UserName),
		Status:      entity.MealRequestPending,
		RequestedAt: time.Now().UTC(),
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		// A concurrent submission won the unique index.
		if errors.Is(err, repository.ErrDuplicateMealRequest) {
			return nil, errors.WithStack(domainerrors.ErrDuplicateRequest)
		}

		return nil, errors.Wrap(err, "failed to create meal request")
	}

	s.log(ctx).Info("Meal request submitted", slog.String("request_id", req.ID), slog.String("meal_id", req.MealID))

	publishEvent(ctx, s.publisher, s.log(ctx), service.EventMealRequestSubmitted, &service.MealRequestSubmittedData{
		RequestID: req.ID,
		MealID:    req.MealID,
		Email:     req.UserEmail,
	})

	return req, nil
}

// ListRequestsForUser joins the user's requests with the current title and counts of each meal
func (s *mealRequestService) ListRequestsForUser(ctx context.Context, email string) ([]*entity.MealRequestView, error) {
	email, err := requireEmail(email)
	if err != nil {
		return nil, err
	}

	views, err := s.requestRepo.ListViewsByUser(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal requests for user")
	}

	return views, nil
}

// ListRequests returns one page of requests for administrators
func (s *mealRequestService) ListRequests(ctx context.Context, input *usecase.ListMealRequestsInput) (*usecase.MealRequestListOutput, error) {
	if input == nil {
		input = &usecase.ListMealRequestsInput{}
	}

	status := entity.MealRequestStatus(strings.TrimSpace(input.Status))
	if status != "" && !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown status"))
	}

	page, err := newPage(s.config, input.Skip, input.Limit)
	if err != nil {
		return nil, err
	}

	views, total, err := s.requestRepo.ListViews(ctx, entity.MealRequestFilter{
		Status: status,
		Search: strings.TrimSpace(input.Search),
		Page:   page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal requests")
	}

	return &usecase.MealRequestListOutput{Requests: views, Total: total}, nil
}

// UpdateStatus moves a request to a new workflow state
func (s *mealRequestService) UpdateStatus(ctx context.Context, id string, status entity.MealRequestStatus) (*entity.MealRequest, error) {
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown status"))
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrMealRequestNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMealRequestNotFound)
		}

		return nil, errors.Wrap(err, "failed to update meal request status")
	}

	req, err := s.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Meal request status updated", slog.String("request_id", id), slog.String("status", string(status)))

	return req, nil
}

// CancelRequest deletes a pending request owned by email
func (s *mealRequestService) CancelRequest(ctx context.Context, id, email string) error {
	req, err := s.findOwnedRequest(ctx, id, email)
	if err != nil {
		return err
	}

	if req.Status != entity.MealRequestPending {
		return errors.WithStack(domainerrors.ErrConflict.WithDetails("only pending requests can be cancelled"))
	}

	if err := s.requestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMealRequestNotFound) {
			return errors.WithStack(domainerrors.ErrMealRequestNotFound)
		}

		return errors.Wrap(err, "failed to delete meal request")
	}

	return nil
}

// GenerateTicketQR renders the pickup ticket of a request owned by email
func (s *mealRequestService) GenerateTicketQR(ctx context.Context, id, email string) ([]byte, error) {
	req, err := s.findOwnedRequest(ctx, id, email)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateMealRequestQR(req.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate meal request QR")
	}

	return png, nil
}

// ServeByTicket marks the request encoded in a scanned ticket as served
func (s *mealRequestService) ServeByTicket(ctx context.Context, qrData string) (*entity.MealRequest, error) {
	id, err := s.qrcodeService.ParseMealRequestQR(qrData)
	if err != nil {
		s.log(ctx).Warn("Invalid meal request ticket scanned", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidTicket)
	}

	req, err := s.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != entity.MealRequestPending {
		return nil, errors.WithStack(domainerrors.ErrConflict.WithDetails("request is already " + string(req.Status)))
	}

	served, err := s.requestRepo.TransitionStatus(ctx, id, entity.MealRequestPending, entity.MealRequestServed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark meal request served")
	}
	if !served {
		// Another scan or an admin update got there first.
		return nil, errors.WithStack(domainerrors.ErrConflict.WithDetails("request is no longer pending"))
	}
	req.Status = entity.MealRequestServed

	s.log(ctx).Info("Meal request served by ticket", slog.String("request_id", id))

	return req, nil
}

func (s *mealRequestService) findRequest(ctx context.Context, id string) (*entity.MealRequest, error) {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMealRequestNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMealRequestNotFound)
		}

		return nil, errors.Wrap(err, "failed to find meal request")
	}

	return req, nil
}

func (s *mealRequestService) findOwnedRequest(ctx context.Context, id, email string) (*entity.MealRequest, error) {
	req, err := s.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserEmail != normalizeEmail(email) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return req, nil
}
