// Package response normalizes every payload the API emits into one envelope
// shape. Handlers and middleware produce nothing else.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the unified API response structure.
type Envelope struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Error   bool   `json:"error"`
	Results any    `json:"results,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// allowedCodes is the fixed allow-list of status codes an error envelope may
// carry; anything else is normalized to 500.
var allowedCodes = map[int]struct{}{
	http.StatusOK:                  {},
	http.StatusCreated:             {},
	http.StatusBadRequest:          {},
	http.StatusUnauthorized:        {},
	http.StatusForbidden:           {},
	http.StatusNotFound:            {},
	http.StatusUnprocessableEntity: {},
	http.StatusInternalServerError: {},
}

// Success builds a success envelope. Pure, no side effects.
func Success(message string, results any, code int) Envelope {
	return Envelope{
		Message: message,
		Code:    code,
		Error:   false,
		Results: results,
	}
}

// Error builds an error envelope, clamping the code to the allow-list.
func Error(message string, code int) Envelope {
	if _, ok := allowedCodes[code]; !ok {
		code = http.StatusInternalServerError
	}

	return Envelope{
		Message: message,
		Code:    code,
		Error:   true,
	}
}

// Validation builds the envelope for schema violations.
func Validation(errs any) Envelope {
	return Envelope{
		Message: "Validation errors",
		Code:    http.StatusUnprocessableEntity,
		Error:   true,
		Errors:  errs,
	}
}

// JSONSuccess writes a success envelope to the response.
func JSONSuccess(c echo.Context, code int, message string, results any) error {
	return c.JSON(code, Success(message, results, code))
}

// JSONError writes an error envelope; the HTTP status follows the clamped code.
func JSONError(c echo.Context, code int, message string) error {
	envelope := Error(message, code)

	return c.JSON(envelope.Code, envelope)
}

// JSONValidation writes a validation envelope with status 422.
func JSONValidation(c echo.Context, errs any) error {
	envelope := Validation(errs)

	return c.JSON(envelope.Code, envelope)
}
