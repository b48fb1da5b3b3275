// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.JSONError(c, http.StatusBadRequest, "Invalid request body!")
	}

	view, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSONSuccess(c, http.StatusCreated, "User Created!", map[string]any{"data": view})
}

// Login handles the credential check and token issuance request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.JSONError(c, http.StatusBadRequest, "Invalid request body!")
	}

	token, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSONSuccess(c, http.StatusCreated, "Token Created!", map[string]any{"data": token})
}

// GetAccount handles the account fetch request. A missing account is passed
// through as a success envelope carrying a null record.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	view, err := h.uc.GetAccount(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSONSuccess(c, http.StatusOK, "User Fetched!", map[string]any{"data": view})
}

// UpdateAccount handles the partial update request.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	var input *usecase.UpdateInput
	if err := c.Bind(&input); err != nil {
		return response.JSONError(c, http.StatusBadRequest, "Invalid request body!")
	}

	ack, err := h.uc.UpdateAccount(c.Request().Context(), c.Param("userId"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSONSuccess(c, http.StatusOK, "User Updated!", map[string]any{"data": ack})
}

// DeleteAccount handles the account removal request.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	ack, err := h.uc.DeleteAccount(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSONSuccess(c, http.StatusOK, "User Deleted!", map[string]any{"data": ack})
}
