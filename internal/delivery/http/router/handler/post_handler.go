package handler

import (
	"net/http"

	"accounts/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// PostHandler serves the protected posts endpoint.
type PostHandler struct{}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// GetPosts returns the placeholder post list. Reaching it at all proves the
// bearer token passed the auth gate.
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts := map[string]string{
		"title":       "Title",
		"description": "Description",
	}

	return response.JSONSuccess(c, http.StatusOK, "Ok", posts)
}
