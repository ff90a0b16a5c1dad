package jsonfile

import (
	"context"
	"sort"

	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// CategoryStore implements the store.CategoryStore interface using a JSON
// collection file as the storage backend. Name comparison is
// case-sensitive.
type CategoryStore struct {
	collection *Collection[domain.Category]
}

// NewCategoryStore creates a category store backed by the collection file at path.
func NewCategoryStore(path string) (*CategoryStore, error) {
	collection, err := NewCollection[domain.Category](path)
	if err != nil {
		return nil, store.NewStoreError("category", "init", "failed to open collection", err)
	}
	return &CategoryStore{collection: collection}, nil
}

// Ensure CategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*CategoryStore)(nil)

// GetAll implements store.CategoryStore.GetAll
func (s *CategoryStore) GetAll(ctx context.Context) ([]string, error) {
	categories := s.collection.Load(ctx)

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	sort.Strings(names)
	return names, nil
}

// Add implements store.CategoryStore.Add. The duplicate check and the
// append run inside one critical section.
func (s *CategoryStore) Add(ctx context.Context, name string) error {
	category, err := domain.NewCategory(name)
	if err != nil {
		return store.NewStoreError("category", "add", "validation failed", store.ErrInvalidEntity)
	}

	return s.collection.Update(ctx, func(categories []domain.Category) ([]domain.Category, error) {
		for _, existing := range categories {
			if existing.Name == category.Name {
				return nil, store.ErrCategoryExists
			}
		}
		return append(categories, *category), nil
	})
}

// Delete implements store.CategoryStore.Delete
func (s *CategoryStore) Delete(ctx context.Context, name string) (bool, error) {
	removed := false

	err := s.collection.Update(ctx, func(categories []domain.Category) ([]domain.Category, error) {
		kept := categories[:0]
		for _, category := range categories {
			if category.Name == name {
				removed = true
				continue
			}
			kept = append(kept, category)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// Exists implements store.CategoryStore.Exists
func (s *CategoryStore) Exists(ctx context.Context, name string) (bool, error) {
	for _, category := range s.collection.Load(ctx) {
		if category.Name == name {
			return true, nil
		}
	}
	return false, nil
}
