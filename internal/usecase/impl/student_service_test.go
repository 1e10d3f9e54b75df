package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook/config"
	"gradebook/internal/domain/repository"
	"gradebook/internal/errors"
	"gradebook/internal/infra/persistence/memory"
	"gradebook/internal/usecase"
)

func createTestStudentService(t *testing.T) usecase.StudentUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.Roster = &config.RosterConfig{Seed: []config.StudentSeed{
		{ID: 1, Name: "Navin", Marks: 60},
		{ID: 2, Name: "Kiran", Marks: 70},
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewStudentService(memory.NewStudentStore(cfg), logger)
}

func TestStudentService_ListStudents(t *testing.T) {
	svc := createTestStudentService(t)

	students, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Navin", students[0].Name)
	assert.Equal(t, 70, students[1].Marks)
}

func TestStudentService_AddAndGetStudent(t *testing.T) {
	svc := createTestStudentService(t)
	ctx := context.Background()

	student, err := svc.AddStudent(ctx, &usecase.AddStudentInput{Name: "Alice", Marks: 88})
	require.NoError(t, err)
	assert.Equal(t, 3, student.ID)

	found, err := svc.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
	assert.Equal(t, 88, found.Marks)
}

func TestStudentService_RemoveStudent(t *testing.T) {
	svc := createTestStudentService(t)
	ctx := context.Background()

	require.NoError(t, svc.RemoveStudent(ctx, 1))

	_, err := svc.GetStudent(ctx, 1)
	assert.True(t, errors.Is(err, repository.ErrStudentNotFound))

	err = svc.RemoveStudent(ctx, 99)
	assert.True(t, errors.Is(err, repository.ErrStudentNotFound))
}
