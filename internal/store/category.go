package store

import "context"

// CategoryStore defines the interface for explicitly registered category
// names. Categories also appear implicitly through tasks; the effective
// set exposed to users is computed by the board service.
type CategoryStore interface {
	// GetAll retrieves all registered category names in lexicographic order.
	GetAll(ctx context.Context) ([]string, error)

	// Add registers a new category name. The existence check and the
	// insert run in a single critical section; returns ErrCategoryExists
	// if the name is already registered.
	Add(ctx context.Context, name string) error

	// Delete removes the category with the given name and reports
	// whether a record was removed.
	Delete(ctx context.Context, name string) (bool, error)

	// Exists reports whether the given category name is registered.
	Exists(ctx context.Context, name string) (bool, error)
}
