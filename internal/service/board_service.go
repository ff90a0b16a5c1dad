package service

import (
	"context"
	"sort"

	"github.com/phrazzld/kanban-api/internal/config"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// BoardService provides board-level views over the task and category
// collections.
type BoardService struct {
	taskStore     store.TaskStore
	categoryStore store.CategoryStore
	board         config.BoardConfig
}

// NewBoardService creates a new BoardService with the given dependencies.
func NewBoardService(
	taskStore store.TaskStore,
	categoryStore store.CategoryStore,
	board config.BoardConfig,
) *BoardService {
	return &BoardService{
		taskStore:     taskStore,
		categoryStore: categoryStore,
		board:         board,
	}
}

// Board returns all tasks grouped by configured column. Every configured
// column is present in the result, empty columns included. Tasks in
// columns no longer configured are omitted.
func (s *BoardService) Board(ctx context.Context) (map[string][]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, err
	}

	board := make(map[string][]domain.Task, len(s.board.Columns))
	for _, column := range s.board.Columns {
		board[column] = []domain.Task{}
	}
	for _, task := range tasks {
		if _, ok := board[task.Column]; ok {
			board[task.Column] = append(board[task.Column], task)
		}
	}
	return board, nil
}

// Categories returns the effective category set: the union of explicitly
// registered categories and the distinct non-empty category values
// currently used by tasks, deduplicated and sorted.
func (s *BoardService) Categories(ctx context.Context) ([]string, error) {
	stored, err := s.categoryStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(stored))
	union := make([]string, 0, len(stored))
	for _, name := range stored {
		if !seen[name] {
			seen[name] = true
			union = append(union, name)
		}
	}
	for _, task := range tasks {
		if task.Category != "" && !seen[task.Category] {
			seen[task.Category] = true
			union = append(union, task.Category)
		}
	}

	sort.Strings(union)
	return union, nil
}
