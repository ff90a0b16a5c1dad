package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/phrazzld/kanban-api/internal/platform/logger"
)

// Collection is a durable, concurrency-safe list of records persisted as
// one JSON file. A single mutex guards every load and every
// load-modify-save cycle, so no interleaving of operations on the same
// Collection can produce a lost update. The guarantee is per instance and
// per process; external writers to the same file are not protected
// against.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection opens the collection at path, creating the parent
// directory and an empty collection file if they do not exist. It is
// idempotent and safe to call from multiple stores pointing at the same
// path.
func NewCollection[T any](path string) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory for %s: %w", path, err)
	}

	// O_EXCL so concurrent initializers racing on the same path cannot
	// truncate each other's file.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &Collection[T]{path: path}, nil
		}
		return nil, fmt.Errorf("failed to create collection file %s: %w", path, err)
	}

	if _, err := f.Write([]byte("[]\n")); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to initialize collection file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close collection file %s: %w", path, err)
	}

	return &Collection[T]{path: path}, nil
}

// Path returns the file backing this collection.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads and deserializes the full collection. A missing file or
// undecodable contents degrade to an empty collection rather than
// failing the caller: a corrupt or partial write must never crash reads.
// The degradation is logged so corruption stays observable.
func (c *Collection[T]) Load(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// load reads the file without taking the mutex. Callers must hold c.mu.
func (c *Collection[T]) load(ctx context.Context) []T {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(c.path)
	if err != nil {
		log.Warn("collection read failed, treating as empty",
			"path", c.path,
			"error", err)
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn("collection contents undecodable, treating as empty",
			"path", c.path,
			"error", err)
		return []T{}
	}
	return records
}

// Save serializes records and overwrites the collection file. Write
// failures propagate; unlike reads, a failed write is fatal to the
// operation.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// save writes the file without taking the mutex. Callers must hold c.mu.
func (c *Collection[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", c.path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.path, err)
	}
	return nil
}

// Update runs fn inside the collection's critical section: the records it
// receives are the current contents, and the slice it returns replaces
// them on disk. No concurrent Load, Save or Update on this Collection can
// observe or interleave with a partially applied update. If fn returns an
// error the file is left untouched and the error is returned unchanged.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := fn(c.load(ctx))
	if err != nil {
		return err
	}
	return c.save(records)
}
