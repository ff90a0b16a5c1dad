package store

import (
	"context"

	"github.com/phrazzld/kanban-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// List retrieves all tasks in insertion order.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// ListByColumn retrieves all tasks currently in the given column.
	ListByColumn(ctx context.Context, column string) ([]domain.Task, error)

	// Create persists a new task. CreatedAt/UpdatedAt are populated if
	// unset. The stored record is returned unchanged in content.
	Create(ctx context.Context, task *domain.Task) error

	// Update applies a partial update to the task with the given ID.
	// Only non-nil fields of the update are merged; UpdatedAt is always
	// refreshed. Returns the updated task, or ErrTaskNotFound.
	Update(ctx context.Context, id string, update domain.TaskUpdate) (*domain.Task, error)

	// Move changes the task's column. The position argument is accepted
	// for forward compatibility but ordering within a column is not
	// persisted. Returns the updated task, or ErrTaskNotFound.
	Move(ctx context.Context, id string, column string, position *int) (*domain.Task, error)

	// Delete removes the task with the given ID and reports whether a
	// record was removed. Absence is not an error at this layer; the
	// caller translates a false return into a not-found response.
	Delete(ctx context.Context, id string) (bool, error)
}
