// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gradebook/internal/delivery/http/middleware"
	"gradebook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	StudentHandler *handler.StudentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	studentHandler *handler.StudentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		studentHandler: params.StudentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Public endpoints
	e.GET("/", handler.Greet)
	e.GET("/about", handler.About)
	e.GET("/health", handler.HealthCheck)
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// Roster routes require a valid bearer token
	studentGroup := e.Group("/students")
	studentGroup.Use(r.authMiddleware.Authenticate)
	{
		studentGroup.GET("", r.studentHandler.List)
		studentGroup.POST("", r.studentHandler.Add)
		studentGroup.GET("/:id", r.studentHandler.Get)
		studentGroup.DELETE("/:id", r.studentHandler.Remove)
	}
}
