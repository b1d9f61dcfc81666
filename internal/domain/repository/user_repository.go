// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hostelbites/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when the email is already registered.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. Duplicate emails fail with ErrUserExists.
	Create(ctx context.Context, user *entity.User) error

	// SetBadge sets the subscription tier on the user with the given email, or removes it when badge is nil.
	// It returns ErrUserNotFound when no user matched, regardless of whether the value changed.
	SetBadge(ctx context.Context, email string, badge *string) error

	// RestoreBadge sets badge (or removes it when nil) only while the stored badge still equals current.
	// It reports false when the user is missing or the badge has changed since.
	RestoreBadge(ctx context.Context, email, current string, badge *string) (bool, error)

	// List returns users matching the filter and the total match count.
	List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, int64, error)
}
