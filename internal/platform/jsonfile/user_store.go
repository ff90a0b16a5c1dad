package jsonfile

import (
	"context"

	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// UserStore implements the store.UserStore interface using a JSON
// collection file as the storage backend.
type UserStore struct {
	collection *Collection[domain.User]
}

// NewUserStore creates a user store backed by the collection file at path.
func NewUserStore(path string) (*UserStore, error) {
	collection, err := NewCollection[domain.User](path)
	if err != nil {
		return nil, store.NewStoreError("user", "init", "failed to open collection", err)
	}
	return &UserStore{collection: collection}, nil
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// GetByUsername implements store.UserStore.GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range s.collection.Load(ctx) {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Create implements store.UserStore.Create. The duplicate check and the
// append run inside one critical section, so two concurrent creates for
// the same username cannot both succeed.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "create", "validation failed", store.ErrInvalidEntity)
	}

	return s.collection.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		for _, existing := range users {
			if existing.Username == user.Username {
				return nil, store.ErrUsernameExists
			}
		}
		return append(users, *user), nil
	})
}

// Exists implements store.UserStore.Exists
func (s *UserStore) Exists(ctx context.Context, username string) (bool, error) {
	for _, user := range s.collection.Load(ctx) {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "update", "validation failed", store.ErrInvalidEntity)
	}

	return s.collection.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if users[i].Username == user.Username {
				users[i] = *user
				return users, nil
			}
		}
		return nil, store.ErrUserNotFound
	})
}

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	return s.collection.Load(ctx), nil
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, username string) (bool, error) {
	removed := false

	err := s.collection.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		kept := users[:0]
		for _, user := range users {
			if user.Username == username {
				removed = true
				continue
			}
			kept = append(kept, user)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}
