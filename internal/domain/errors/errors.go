// Package errors defines the application error taxonomy. Every failure a
// usecase can surface is one of these values (or a ValidationError), so the
// delivery layer can map errors to responses exhaustively instead of
// inspecting messages at runtime.
package errors

import (
	"net/http"

	"accounts/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
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

// Predefined error types
var (
	// ErrEmailExists is returned when registration reuses an email that is
	// already taken. The original API reported this as a plain 400, not 409.
	ErrEmailExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_EXISTS",
		"Email already exists!",
	)

	// ErrEmailNotFound is returned when login references an unknown email.
	ErrEmailNotFound = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_FOUND",
		"Email does not exist!",
	)

	// ErrInvalidAccountID is returned when a path parameter is not a valid
	// account identifier.
	ErrInvalidAccountID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACCOUNT_ID",
		"Invalid account id!",
	)

	// Token gate errors, one per rejection branch of the auth middleware.
	ErrNoToken = NewBaseError(
		http.StatusForbidden,
		"NO_TOKEN",
		"No token! Access denied!",
	)

	ErrMalformedAuthHeader = NewBaseError(
		http.StatusUnauthorized,
		"MALFORMED_AUTH_HEADER",
		"No token! Access denied!",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Invalid token! Access denied!",
	)

	// ErrInternal covers store and crypto failures the caller cannot act on.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal Server Error!",
	)
)

// ValidationError reports the first failing input rule. Key names the part of
// the payload that failed ("registration", "login", "password", ...) and
// becomes the key of the `errors` object in the validation envelope.
type ValidationError struct {
	Key    string
	Detail string
}

// NewValidationError creates a validation error for the given payload key.
func NewValidationError(key, detail string) *ValidationError {
	return &ValidationError{Key: key, Detail: detail}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Detail
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.Detail
}

// Errors returns the payload for the validation envelope.
func (e *ValidationError) Errors() map[string]string {
	return map[string]string{e.Key: e.Detail}
}
