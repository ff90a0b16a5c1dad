package jsonfile

import (
	"context"
	"time"

	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a JSON
// collection file as the storage backend.
type TaskStore struct {
	collection *Collection[domain.Task]
}

// NewTaskStore creates a task store backed by the collection file at path.
func NewTaskStore(path string) (*TaskStore, error) {
	collection, err := NewCollection[domain.Task](path)
	if err != nil {
		return nil, store.NewStoreError("task", "init", "failed to open collection", err)
	}
	return &TaskStore{collection: collection}, nil
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	return s.collection.Load(ctx), nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	for _, task := range s.collection.Load(ctx) {
		if task.ID == id {
			return &task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// ListByColumn implements store.TaskStore.ListByColumn
func (s *TaskStore) ListByColumn(ctx context.Context, column string) ([]domain.Task, error) {
	tasks := []domain.Task{}
	for _, task := range s.collection.Load(ctx) {
		if task.Column == column {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return store.NewStoreError("task", "create", "validation failed", store.ErrInvalidEntity)
	}

	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = now
	}

	return s.collection.Update(ctx, func(tasks []domain.Task) ([]domain.Task, error) {
		return append(tasks, *task), nil
	})
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, id string, update domain.TaskUpdate) (*domain.Task, error) {
	var updated *domain.Task

	err := s.collection.Update(ctx, func(tasks []domain.Task) ([]domain.Task, error) {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}
			applyTaskUpdate(&tasks[i], update)
			tasks[i].UpdatedAt = time.Now().UTC()
			updated = &tasks[i]
			return tasks, nil
		}
		return nil, store.ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Move implements store.TaskStore.Move. The position argument is accepted
// but ordering within a column is not persisted, so it has no effect.
func (s *TaskStore) Move(ctx context.Context, id string, column string, position *int) (*domain.Task, error) {
	return s.Update(ctx, id, domain.TaskUpdate{Column: &column})
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id string) (bool, error) {
	removed := false

	err := s.collection.Update(ctx, func(tasks []domain.Task) ([]domain.Task, error) {
		kept := tasks[:0]
		for _, task := range tasks {
			if task.ID == id {
				removed = true
				continue
			}
			kept = append(kept, task)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// applyTaskUpdate merges the non-nil fields of update into task. A nil
// field leaves the stored value untouched; a non-nil pointer overwrites
// it even with a zero value. A due date pointing at the zero time clears
// the field.
func applyTaskUpdate(task *domain.Task, update domain.TaskUpdate) {
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.Category != nil {
		task.Category = *update.Category
	}
	if update.DueDate != nil {
		if update.DueDate.IsZero() {
			task.DueDate = nil
		} else {
			due := *update.DueDate
			task.DueDate = &due
		}
	}
	if update.Column != nil {
		task.Column = *update.Column
	}
}
