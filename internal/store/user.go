package store

import (
	"context"

	"github.com/phrazzld/kanban-api/internal/domain"
)

// UserStore defines the interface for user persistence. Users are keyed
// by username; there is no separate ID.
type UserStore interface {
	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create saves a new user. The existence check and the insert run in
	// a single critical section; returns ErrUsernameExists if the
	// username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// Exists reports whether a user with the given username exists.
	Exists(ctx context.Context, username string) (bool, error)

	// Update replaces the stored record for user.Username with the given
	// full record (used for password changes). Returns ErrUserNotFound
	// if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// List retrieves all users.
	List(ctx context.Context) ([]domain.User, error)

	// Delete removes the user with the given username and reports
	// whether a record was removed.
	Delete(ctx context.Context, username string) (bool, error)
}
