package middleware

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/response"
	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps application errors to response envelopes. It is the
// single place where the error taxonomy becomes user-visible output, wired as
// Echo's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Schema violations get the dedicated validation envelope.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.JSONValidation(c, validationErr.Errors())

		return
	}

	// Taxonomy errors carry their own status code and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.JSONError(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors (404 route misses, body limit, rate limit).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.JSONError(c, httpErr.Code, message)

		return
	}

	// Anything else is an unhandled fault; log it and return a generic 500.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.JSONError(c, http.StatusInternalServerError, "Internal Server Error!")
}
