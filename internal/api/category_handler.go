package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/kanban-api/internal/api/shared"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/phrazzld/kanban-api/internal/store"
)

// CategoryHandler handles explicitly registered category names.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	boardService  *service.BoardService
	validator     *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(
	categoryStore store.CategoryStore,
	boardService *service.BoardService,
) *CategoryHandler {
	return &CategoryHandler{
		categoryStore: categoryStore,
		boardService:  boardService,
		validator:     validator.New(),
	}
}

// List handles GET /api/categories, returning the effective category set
// (registered names plus categories currently used by tasks).
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.boardService.Categories(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{Categories: categories})
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryCreateRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.categoryStore.Add(r.Context(), req.Name); err != nil {
		if errors.Is(err, store.ErrCategoryExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Category already exists")
			return
		}
		if errors.Is(err, store.ErrInvalidEntity) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category name")
			return
		}
		slog.Error("failed to add category", "error", err, "name", req.Name)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Message: "Category " + req.Name + " created",
	})
}

// Delete handles DELETE /api/categories/{name}. Removing a registered
// category does not touch tasks that reference it.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	removed, err := h.categoryStore.Delete(r.Context(), name)
	if err != nil {
		slog.Error("failed to delete category", "error", err, "name", name)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if !removed {
		shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
