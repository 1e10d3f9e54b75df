// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gradebook/internal/delivery/http/response"
	"gradebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for registration and login handlers.
type UserHandler struct {
	uc     usecase.CredentialUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.CredentialUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// userResponse is the outward shape of a stored user. The password hash
// never leaves the service.
type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, userResponse{
		ID:       output.User.ID,
		Username: output.User.Username,
	}, "User registered successfully")
}

// Login handles the user login request. The body is the raw token string,
// or the literal "fail" when the credentials were rejected.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	token, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, token)
}

// Greet is the public root endpoint.
func Greet(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to Gradebook")
}

// About describes the service.
func About(c echo.Context) error {
	return c.String(http.StatusOK, "Gradebook keeps a student roster behind token-protected endpoints")
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Healthy")
}
