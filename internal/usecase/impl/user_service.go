// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo         repository.UserRepository
	tokenService     service.TokenService
	identityVerifier service.IdentityVerifier
	config           *config.Config
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService

	// IdentityVerifier is nil when Firebase is not configured; the request email is then trusted.
	IdentityVerifier service.IdentityVerifier `optional:"true"`

	Config *config.Config
	Logger *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:         params.UserRepo,
		tokenService:     params.TokenService,
		identityVerifier: params.IdentityVerifier,
		config:           params.Config,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a resident account. Emails are unique; a second registration is rejected.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:     input.Email,
		Name:      input.Name,
		PhotoURL:  input.PhotoURL,
		Role:      entity.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			srv.log(ctx).Warn("Registration for existing email rejected", slog.String("email", user.Email))

			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("email", user.Email), slog.String("user_id", user.ID))

	return user, nil
}

// GetProfile returns the user with the given email
func (srv *userService) GetProfile(ctx context.Context, email string) (*entity.User, error) {
	email, err := requireEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// ListUsers returns one page of users for administrators
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	if input == nil {
		input = &usecase.ListUsersInput{}
	}

	page, err := newPage(srv.config, input.Skip, input.Limit)
	if err != nil {
		return nil, err
	}

	users, total, err := srv.userRepo.List(ctx, entity.UserFilter{
		Search: strings.TrimSpace(input.Search),
		Page:   page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserListOutput{Users: users, Total: total}, nil
}

// IssueToken signs an access token for a registered user.
func (srv *userService) IssueToken(ctx context.Context, input *usecase.IssueTokenInput) (*usecase.TokenOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	email, err := srv.resolveEmail(ctx, input)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.Email, user.Roles().ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.TokenOutput{AccessToken: accessToken, User: user}, nil
}

// resolveEmail returns the verified email when identity verification is enabled, otherwise the request email.
func (srv *userService) resolveEmail(ctx context.Context, input *usecase.IssueTokenInput) (string, error) {
	if srv.identityVerifier == nil {
		return requireEmail(input.Email)
	}

	if strings.TrimSpace(input.IDToken) == "" {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("idToken is required"))
	}

	identity, err := srv.identityVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("ID token verification failed", slog.Any("error", err))

		return "", errors.WithStack(domainerrors.ErrInvalidToken)
	}

	return requireEmail(identity.Email)
}
