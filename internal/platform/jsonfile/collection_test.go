package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func newTestCollection(t *testing.T) *Collection[record] {
	t.Helper()

	collection, err := NewCollection[record](filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, err)
	return collection
}

func TestNewCollection(t *testing.T) {
	t.Parallel()

	t.Run("creates directory and empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "records.json")
		collection, err := NewCollection[record](path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
		assert.Empty(t, collection.Load(context.Background()))
	})

	t.Run("idempotent for existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "records.json")
		first, err := NewCollection[record](path)
		require.NoError(t, err)
		require.NoError(t, first.Save(context.Background(), []record{{ID: "a", Value: 1}}))

		// A second store opening the same path must not truncate it.
		second, err := NewCollection[record](path)
		require.NoError(t, err)
		assert.Len(t, second.Load(context.Background()), 1)
	})
}

func TestCollectionRoundTrip(t *testing.T) {
	t.Parallel()

	collection := newTestCollection(t)
	ctx := context.Background()

	records := []record{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
	require.NoError(t, collection.Save(ctx, records))

	loaded := collection.Load(ctx)
	assert.Equal(t, records, loaded, "Save then Load should preserve records and order")
}

func TestCollectionLoadDegradesToEmpty(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		collection := newTestCollection(t)
		require.NoError(t, os.Remove(collection.Path()))

		// Deliberate policy: a read failure is treated as an empty
		// collection, never surfaced to the caller.
		assert.Empty(t, collection.Load(context.Background()))
	})

	t.Run("corrupt contents", func(t *testing.T) {
		t.Parallel()

		collection := newTestCollection(t)
		require.NoError(t, os.WriteFile(collection.Path(), []byte("{not valid json"), 0o644))

		assert.Empty(t, collection.Load(context.Background()))
	})

	t.Run("save repairs corrupt file", func(t *testing.T) {
		t.Parallel()

		collection := newTestCollection(t)
		ctx := context.Background()
		require.NoError(t, os.WriteFile(collection.Path(), []byte("garbage"), 0o644))

		require.NoError(t, collection.Save(ctx, []record{{ID: "a", Value: 1}}))
		assert.Len(t, collection.Load(ctx), 1)
	})
}

func TestCollectionUpdate(t *testing.T) {
	t.Parallel()

	t.Run("replaces contents atomically", func(t *testing.T) {
		t.Parallel()

		collection := newTestCollection(t)
		ctx := context.Background()

		err := collection.Update(ctx, func(records []record) ([]record, error) {
			return append(records, record{ID: "a", Value: 1}), nil
		})
		require.NoError(t, err)

		assert.Len(t, collection.Load(ctx), 1)
	})

	t.Run("callback error leaves file untouched", func(t *testing.T) {
		t.Parallel()

		collection := newTestCollection(t)
		ctx := context.Background()
		require.NoError(t, collection.Save(ctx, []record{{ID: "a", Value: 1}}))

		wantErr := assert.AnError
		err := collection.Update(ctx, func(records []record) ([]record, error) {
			return nil, wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Len(t, collection.Load(ctx), 1, "failed update must not modify the collection")
	})
}

// TestCollectionConcurrentUpdates drives many read-modify-write cycles in
// parallel and asserts no update is lost: the critical section must cover
// the whole cycle, not just the individual read and write.
func TestCollectionConcurrentUpdates(t *testing.T) {
	t.Parallel()

	collection := newTestCollection(t)
	ctx := context.Background()

	const goroutines = 20
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(n int) {
			defer wg.Done()
			err := collection.Update(ctx, func(records []record) ([]record, error) {
				return append(records, record{ID: "r", Value: n}), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, collection.Load(ctx), goroutines, "every concurrent append must survive")
}
