package impl

import (
	"context"
	"log/slog"

	"gradebook/internal/domain/entity"
	"gradebook/internal/domain/repository"
	"gradebook/internal/usecase"
)

// studentService implements the StudentUsecase interface over the roster repository.
type studentService struct {
	students repository.StudentRepository
	logger   *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(students repository.StudentRepository, logger *slog.Logger) usecase.StudentUsecase {
	return &studentService{
		students: students,
		logger:   logger,
	}
}

func (srv *studentService) ListStudents(ctx context.Context) ([]entity.Student, error) {
	return srv.students.List(ctx)
}

func (srv *studentService) GetStudent(ctx context.Context, id int) (*entity.Student, error) {
	return srv.students.FindByID(ctx, id)
}

func (srv *studentService) AddStudent(ctx context.Context, input *usecase.AddStudentInput) (*entity.Student, error) {
	student := &entity.Student{
		ID:    input.ID,
		Name:  input.Name,
		Marks: input.Marks,
	}

	if err := srv.students.Add(ctx, student); err != nil {
		return nil, err
	}

	srv.logger.Debug("Student added", "studentID", student.ID)

	return student, nil
}

func (srv *studentService) RemoveStudent(ctx context.Context, id int) error {
	if err := srv.students.Remove(ctx, id); err != nil {
		return err
	}

	srv.logger.Debug("Student removed", "studentID", id)

	return nil
}
