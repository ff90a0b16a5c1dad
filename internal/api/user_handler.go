package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/kanban-api/internal/api/middleware"
	"github.com/phrazzld/kanban-api/internal/api/shared"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/store"
)

// UserHandler handles administrative user management requests.
type UserHandler struct {
	userStore store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{userStore: userStore}
}

// List handles GET /api/users. Administrators only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Delete handles DELETE /api/users/{username}. Administrators only; the
// caller cannot delete themselves or the bootstrap admin account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	username := chi.URLParam(r, "username")
	if username == caller.Username {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Cannot delete your own account")
		return
	}
	if username == domain.AdminUsername {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Cannot delete the bootstrap admin account")
		return
	}

	removed, err := h.userStore.Delete(r.Context(), username)
	if err != nil {
		slog.Error("failed to delete user", "error", err, "username", username)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if !removed {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireAdmin resolves the caller and enforces administrator rights.
// It writes an error response and returns false when the check fails.
func (h *UserHandler) requireAdmin(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	username, ok := middleware.GetUsername(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	user, err := h.userStore.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Account not found")
			return nil, false
		}
		slog.Error("failed to resolve current user", "error", err, "username", username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to resolve user")
		return nil, false
	}

	if !user.Admin() {
		shared.RespondWithError(w, r, http.StatusForbidden, "Administrator access required")
		return nil, false
	}

	return user, true
}
