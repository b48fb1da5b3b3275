// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	userGroup := e.Group("/api/user")
	{
		// Protected route; the auth gate runs before the handler.
		userGroup.GET("/posts", r.postHandler.GetPosts, r.authMiddleware.Authenticate)

		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/login", r.accountHandler.Login)

		userGroup.GET("/:userId", r.accountHandler.GetAccount)
		userGroup.PATCH("/:userId", r.accountHandler.UpdateAccount)
		userGroup.DELETE("/:userId", r.accountHandler.DeleteAccount)
	}
}
