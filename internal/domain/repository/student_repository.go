package repository

import (
	"context"
	"errors"

	"gradebook/internal/domain/entity"
)

// ErrStudentNotFound is returned when a roster entry does not exist.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository defines the operations on the demo roster.
type StudentRepository interface {
	// List returns all roster entries in insertion order.
	List(ctx context.Context) ([]entity.Student, error)

	// FindByID retrieves a single student by ID.
	// Returns ErrStudentNotFound when no entry matches.
	FindByID(ctx context.Context, id int) (*entity.Student, error)

	// Add inserts a roster entry, assigning an ID when the caller left it zero.
	Add(ctx context.Context, student *entity.Student) error

	// Remove deletes a roster entry by ID.
	// Returns ErrStudentNotFound when no entry matches.
	Remove(ctx context.Context, id int) error
}
