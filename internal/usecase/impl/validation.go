package impl

import (
	"strings"

	"hostelbites/config"
	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct tag validation and maps failures to ErrValidationFailed.
func validateInput(input any) error {
	if err := inputValidator.Struct(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// requireEmail normalizes email and rejects anything that is not an address.
func requireEmail(email string) (string, error) {
	email = normalizeEmail(email)
	if err := inputValidator.Var(email, "required,email"); err != nil {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("a valid email is required"))
	}

	return email, nil
}

// newPage clamps skip/limit to the catalog bounds.
func newPage(cfg *config.Config, skip, limit int64) (entity.Page, error) {
	if skip < 0 || limit < 0 {
		return entity.Page{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("skip and limit must not be negative"))
	}

	defaultSize, maxSize := int64(20), int64(100)
	if cfg != nil {
		defaultSize = int64(cfg.Catalog.DefaultPageSize)
		maxSize = int64(cfg.Catalog.MaxPageSize)
	}

	if limit == 0 {
		limit = defaultSize
	}
	if maxSize > 0 && limit > maxSize {
		limit = maxSize
	}

	return entity.Page{Skip: skip, Limit: limit}, nil
}
