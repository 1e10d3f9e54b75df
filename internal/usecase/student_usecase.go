package usecase

import (
	"context"

	"gradebook/internal/domain/entity"
)

// AddStudentInput defines the data required to add a roster entry.
type AddStudentInput struct {
	ID    int    `json:"id"`
	Name  string `json:"name" validate:"required"`
	Marks int    `json:"marks"`
}

// StudentUsecase defines the interface for roster operations.
type StudentUsecase interface {
	ListStudents(ctx context.Context) ([]entity.Student, error)
	GetStudent(ctx context.Context, id int) (*entity.Student, error)
	AddStudent(ctx context.Context, input *AddStudentInput) (*entity.Student, error)
	RemoveStudent(ctx context.Context, id int) error
}
