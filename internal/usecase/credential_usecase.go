// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gradebook/internal/domain/entity"
)

// LoginFailed is the literal sentinel returned when authentication reports
// a non-authenticated result.
const LoginFailed = "fail"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Password is a pointer so an absent field can be told apart from an
// empty string; absent fails, empty hashes like any other value.
type RegisterInput struct {
	Username string  `json:"username"`
	Password *string `json:"password"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// RegisterOutput returns the persisted user record, including the assigned ID.
type RegisterOutput struct {
	User *entity.User
}

// CredentialUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CredentialUsecase interface {
	// Register hashes the password and persists the user record.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates the credentials. On success it returns a signed
	// token; on a non-authenticated result it returns LoginFailed. Errors
	// raised by the authenticator propagate unchanged.
	Login(ctx context.Context, input *LoginInput) (string, error)
}
