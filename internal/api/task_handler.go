package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/kanban-api/internal/api/shared"
	"github.com/phrazzld/kanban-api/internal/config"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/phrazzld/kanban-api/internal/store"
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	taskStore    store.TaskStore
	boardService *service.BoardService
	board        config.BoardConfig
	validator    *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(
	taskStore store.TaskStore,
	boardService *service.BoardService,
	board config.BoardConfig,
) *TaskHandler {
	return &TaskHandler{
		taskStore:    taskStore,
		boardService: boardService,
		board:        board,
		validator:    validator.New(),
	}
}

// List handles GET /api/tasks with optional column, priority and
// category filters.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	query := r.URL.Query()
	column := query.Get("column")
	priority := query.Get("priority")
	category := query.Get("category")

	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if column != "" && task.Column != column {
			continue
		}
		if priority != "" && task.Priority != priority {
			continue
		}
		if category != "" && task.Category != category {
			continue
		}
		filtered = append(filtered, task)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, filtered)
}

// Columns handles GET /api/tasks/columns.
func (h *TaskHandler) Columns(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ColumnsResponse{Columns: h.board.Columns})
}

// Priorities handles GET /api/tasks/priorities.
func (h *TaskHandler) Priorities(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, PrioritiesResponse{Priorities: h.board.Priorities})
}

// Categories handles GET /api/tasks/categories. The listing is the union
// of registered categories and categories used by tasks.
func (h *TaskHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.boardService.Categories(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{Categories: categories})
}

// Board handles GET /api/tasks/board, returning tasks grouped by column.
func (h *TaskHandler) Board(w http.ResponseWriter, r *http.Request) {
	board, err := h.boardService.Board(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, board)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TaskCreateRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if req.Column != "" && !h.board.ValidColumn(req.Column) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid column")
		return
	}
	if req.Priority != "" && !h.board.ValidPriority(req.Priority) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid priority")
		return
	}

	task, err := domain.NewTask(req.Title, req.Description, req.Priority, req.Category, req.Column, req.DueDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		slog.Error("failed to create task", "error", err)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id} with partial-update semantics:
// absent fields are left untouched.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TaskUpdateRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if req.Column != nil && !h.board.ValidColumn(*req.Column) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid column")
		return
	}
	if req.Priority != nil && !h.board.ValidPriority(*req.Priority) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid priority")
		return
	}

	task, err := h.taskStore.Update(r.Context(), id, req.Update())
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		slog.Error("failed to update task", "error", err, "task_id", id)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Move handles PATCH /api/tasks/{id}/move.
func (h *TaskHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TaskMoveRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// The target column is checked before the store is touched.
	if !h.board.ValidColumn(req.Column) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid column")
		return
	}

	task, err := h.taskStore.Move(r.Context(), id, req.Column, req.Position)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		slog.Error("failed to move task", "error", err, "task_id", id)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.taskStore.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete task", "error", err, "task_id", id)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if !removed {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
