// Package memory provides process-local storage for the demo roster.
package memory

import (
	"context"
	"slices"
	"sync"

	"gradebook/config"
	"gradebook/internal/domain/entity"
	"gradebook/internal/domain/repository"
)

// studentStore keeps the roster in a mutex-guarded map keyed by student ID.
// Listing preserves insertion order.
type studentStore struct {
	mu      sync.RWMutex
	entries map[int]entity.Student
	order   []int
	nextID  int
}

// NewStudentStore builds the roster store, pre-populated from configuration.
func NewStudentStore(cfg *config.Config) repository.StudentRepository {
	store := &studentStore{
		entries: make(map[int]entity.Student),
		nextID:  1,
	}

	if cfg != nil && cfg.Roster != nil {
		for _, seed := range cfg.Roster.Seed {
			student := entity.Student{ID: seed.ID, Name: seed.Name, Marks: seed.Marks}
			store.insert(&student)
		}
	}

	return store
}

// List returns all roster entries in insertion order.
func (s *studentStore) List(_ context.Context) ([]entity.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]entity.Student, 0, len(s.order))
	for _, id := range s.order {
		students = append(students, s.entries[id])
	}

	return students, nil
}

// FindByID retrieves a single student by ID.
func (s *studentStore) FindByID(_ context.Context, id int) (*entity.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.entries[id]
	if !ok {
		return nil, repository.ErrStudentNotFound
	}

	return &student, nil
}

// Add inserts a roster entry, assigning the next free ID when the caller left it zero.
func (s *studentStore) Add(_ context.Context, student *entity.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insert(student)

	return nil
}

// Remove deletes a roster entry by ID.
func (s *studentStore) Remove(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return repository.ErrStudentNotFound
	}

	delete(s.entries, id)
	s.order = slices.DeleteFunc(s.order, func(existing int) bool {
		return existing == id
	})

	return nil
}

// insert assumes the write lock is held (or the store is not yet shared).
func (s *studentStore) insert(student *entity.Student) {
	if student.ID == 0 {
		student.ID = s.nextID
	}

	if _, exists := s.entries[student.ID]; !exists {
		s.order = append(s.order, student.ID)
	}
	s.entries[student.ID] = *student

	if student.ID >= s.nextID {
		s.nextID = student.ID + 1
	}
}
