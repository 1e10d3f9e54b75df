package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook/config"
	"gradebook/internal/domain/entity"
	"gradebook/internal/domain/repository"
	"gradebook/internal/errors"
)

func seededConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Roster = &config.RosterConfig{Seed: []config.StudentSeed{
		{ID: 1, Name: "Navin", Marks: 60},
		{ID: 2, Name: "Kiran", Marks: 70},
	}}

	return cfg
}

func TestStudentStore_SeededList(t *testing.T) {
	store := NewStudentStore(seededConfig())

	students, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Navin", students[0].Name)
	assert.Equal(t, "Kiran", students[1].Name)
}

func TestStudentStore_AddAssignsID(t *testing.T) {
	store := NewStudentStore(seededConfig())
	ctx := context.Background()

	student := &entity.Student{Name: "Alice", Marks: 88}
	require.NoError(t, store.Add(ctx, student))
	assert.Equal(t, 3, student.ID)

	found, err := store.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
}

func TestStudentStore_AddKeepsExplicitID(t *testing.T) {
	store := NewStudentStore(&config.Config{})
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &entity.Student{ID: 10, Name: "Bob", Marks: 50}))

	found, err := store.FindByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.Name)

	// Next auto-assigned ID continues after the explicit one.
	next := &entity.Student{Name: "Carol", Marks: 75}
	require.NoError(t, store.Add(ctx, next))
	assert.Equal(t, 11, next.ID)
}

func TestStudentStore_Remove(t *testing.T) {
	store := NewStudentStore(seededConfig())
	ctx := context.Background()

	require.NoError(t, store.Remove(ctx, 1))

	_, err := store.FindByID(ctx, 1)
	assert.True(t, errors.Is(err, repository.ErrStudentNotFound))

	err = store.Remove(ctx, 1)
	assert.True(t, errors.Is(err, repository.ErrStudentNotFound))

	students, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Kiran", students[0].Name)
}

func TestStudentStore_ConcurrentAdds(t *testing.T) {
	store := NewStudentStore(&config.Config{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Add(ctx, &entity.Student{Name: "conc", Marks: 1})
		}()
	}
	wg.Wait()

	students, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 50)
}
