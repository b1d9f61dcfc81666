// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hostelbites/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,max=100"`
	PhotoURL string `validate:"omitempty,url"`
}

// IssueTokenInput identifies the caller. IDToken is required when identity verification is enabled.
type IssueTokenInput struct {
	Email   string
	IDToken string
}

// ListUsersInput narrows the admin user listing.
type ListUsersInput struct {
	Search string
	Skip   int64
	Limit  int64
}

// --- Output DTOs ---

// TokenOutput returns a signed access token.
type TokenOutput struct {
	AccessToken string       `json:"accessToken"`
	User        *entity.User `json:"user"`
}

// UserListOutput is one page of users.
type UserListOutput struct {
	Users []*entity.User `json:"users"`
	Total int64          `json:"total"`
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetProfile(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context, input *ListUsersInput) (*UserListOutput, error)
	IssueToken(ctx context.Context, input *IssueTokenInput) (*TokenOutput, error)
}
