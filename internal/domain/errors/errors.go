package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors with the same business code so detailed copies compare equal to their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Malformed request",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"Amount must be a positive integer",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserNotEligible = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_ELIGIBLE",
		"No registered user matches the purchase email",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	// Catalog
	ErrMealNotFound = NewBaseError(
		http.StatusNotFound,
		"MEAL_NOT_FOUND",
		"Meal not found",
		"",
	)

	ErrPackageNotFound = NewBaseError(
		http.StatusNotFound,
		"PACKAGE_NOT_FOUND",
		"Package not found",
		"",
	)

	ErrPackageAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PACKAGE_ALREADY_EXISTS",
		"A package with this name already exists",
		"",
	)

	// Payments
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"No payment recorded for this user",
		"",
	)

	// Meal requests
	ErrMealRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"MEAL_REQUEST_NOT_FOUND",
		"Meal request not found",
		"",
	)

	ErrDuplicateRequest = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_MEAL_REQUEST",
		"This meal has already been requested",
		"",
	)

	ErrInvalidTicket = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TICKET",
		"Invalid meal request ticket",
		"",
	)

	// Authentication
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// GatewayError reports a payment provider failure. The provider message is passed through unchanged.
type GatewayError struct {
	provider string
	message  string
	err      error
}

// NewGatewayError creates a payment gateway error
func NewGatewayError(provider, message string, err error) *GatewayError {
	return &GatewayError{
		provider: provider,
		message:  message,
		err:      err,
	}
}

func (e *GatewayError) Error() string {
	if e.err != nil {
		return "payment gateway " + e.provider + ": " + e.err.Error()
	}

	return "payment gateway " + e.provider + ": " + e.message
}

func (e *GatewayError) Unwrap() error {
	return e.err
}

func (e *GatewayError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *GatewayError) ErrorCode() string {
	return "PAYMENT_GATEWAY_ERROR"
}

func (e *GatewayError) Message() string {
	return e.message
}

func (e *GatewayError) Details() string {
	return e.provider
}

// Provider returns the name of the failing provider.
func (e *GatewayError) Provider() string {
	return e.provider
}

// StoreError represents a persistence failure, implementing the AppError interface
type StoreError struct {
	err       error
	operation string
}

// NewStoreError creates a store-related error
func NewStoreError(err error, operation string) AppError {
	return &StoreError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, e.operation).Error()
}

func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_ERROR"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "Storage operation failed"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.operation
}

// IsStoreError reports whether err wraps a StoreError.
func IsStoreError(err error) bool {
	var storeErr *StoreError

	return errors.As(err, &storeErr)
}
