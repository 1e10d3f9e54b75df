// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gradebook/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single user by their username.
	// Returns ErrUserNotFound when no record matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Save persists a new user entity and assigns its ID.
	Save(ctx context.Context, user *entity.User) error
}
