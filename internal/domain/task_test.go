package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("populates id, defaults and timestamps", func(t *testing.T) {
		t.Parallel()

		before := time.Now().UTC()
		task, err := NewTask("Write report", "", "", "", "", nil)
		require.NoError(t, err)

		assert.NotEmpty(t, task.ID)
		assert.Equal(t, DefaultPriority, task.Priority)
		assert.Equal(t, DefaultColumn, task.Column)
		assert.False(t, task.CreatedAt.Before(before))
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	})

	t.Run("generates distinct ids", func(t *testing.T) {
		t.Parallel()

		first, err := NewTask("one", "", "", "", "", nil)
		require.NoError(t, err)
		second, err := NewTask("two", "", "", "", "", nil)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		task, err := NewTask("Deploy", "ship it", "High", "Work", "Review", &due)
		require.NoError(t, err)

		assert.Equal(t, "High", task.Priority)
		assert.Equal(t, "Work", task.Category)
		assert.Equal(t, "Review", task.Column)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, due, *task.DueDate)
	})
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{
			name:    "valid task",
			mutate:  func(task *Task) {},
			wantErr: nil,
		},
		{
			name:    "empty id",
			mutate:  func(task *Task) { task.ID = "" },
			wantErr: ErrEmptyTaskID,
		},
		{
			name:    "empty title",
			mutate:  func(task *Task) { task.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title too long",
			mutate:  func(task *Task) { task.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "description too long",
			mutate:  func(task *Task) { task.Description = strings.Repeat("x", MaxDescriptionLength+1) },
			wantErr: ErrDescriptionTooLong,
		},
		{
			name:    "category too long",
			mutate:  func(task *Task) { task.Category = strings.Repeat("x", MaxCategoryLength+1) },
			wantErr: ErrCategoryTooLong,
		},
		{
			name:    "empty column",
			mutate:  func(task *Task) { task.Column = "" },
			wantErr: ErrEmptyColumn,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			task, err := NewTask("valid", "", "", "", "", nil)
			require.NoError(t, err)

			tc.mutate(task)

			err = task.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("alice", "$2a$10$fakehash")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("username too short", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser("ab", "$2a$10$fakehash")
		assert.ErrorIs(t, err, ErrUsernameTooShort)
	})

	t.Run("username too long", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser(strings.Repeat("a", MaxUsernameLength+1), "$2a$10$fakehash")
		assert.ErrorIs(t, err, ErrUsernameTooLong)
	})

	t.Run("missing hash", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser("alice", "")
		assert.ErrorIs(t, err, ErrEmptyHashedPassword)
	})
}

func TestUserAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, (&User{Username: "admin"}).Admin(), "the admin account is always an administrator")
	assert.True(t, (&User{Username: "alice", IsAdmin: true}).Admin())
	assert.False(t, (&User{Username: "alice"}).Admin())
}

func TestNewCategory(t *testing.T) {
	t.Parallel()

	t.Run("trims whitespace", func(t *testing.T) {
		t.Parallel()

		category, err := NewCategory("  Work  ")
		require.NoError(t, err)
		assert.Equal(t, "Work", category.Name)
	})

	t.Run("empty after trimming", func(t *testing.T) {
		t.Parallel()

		_, err := NewCategory("   ")
		assert.ErrorIs(t, err, ErrEmptyCategoryName)
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()

		_, err := NewCategory(strings.Repeat("x", MaxCategoryNameLength+1))
		assert.ErrorIs(t, err, ErrCategoryNameTooLong)
	})
}
