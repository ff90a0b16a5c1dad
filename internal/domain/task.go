package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Field length limits for tasks.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxCategoryLength    = 50
)

// Defaults applied when a task is created without explicit values.
// Column and priority membership against the configured board is
// enforced at the API boundary, not here.
const (
	DefaultPriority = "Medium"
	DefaultColumn   = "Backlog"
)

// Task validation errors.
var (
	ErrEmptyTaskID        = errors.New("task ID cannot be empty")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title must be at most 200 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 2000 characters")
	ErrCategoryTooLong    = errors.New("category must be at most 50 characters")
	ErrEmptyColumn        = errors.New("column cannot be empty")
)

// Task represents a single card on the board. The JSON tags define both
// the API representation and the persisted record format.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Column      string     `json:"column"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a Task with a generated ID and populated timestamps.
// Empty priority and column fall back to the defaults. Returns an error
// if validation fails.
func NewTask(title, description, priority, category, column string, dueDate *time.Time) (*Task, error) {
	if priority == "" {
		priority = DefaultPriority
	}
	if column == "" {
		column = DefaultColumn
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
		DueDate:     dueDate,
		Column:      column,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrEmptyTaskID
	}
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(t.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if len(t.Category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}
	if t.Column == "" {
		return ErrEmptyColumn
	}
	return nil
}

// TaskUpdate describes a partial update to a task. A nil field leaves the
// stored value untouched; a non-nil pointer overwrites it, even with a
// zero value. A DueDate pointing at the zero time clears the due date.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *string
	Category    *string
	DueDate     *time.Time
	Column      *string
}
