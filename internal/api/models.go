package api

import (
	"time"

	"github.com/phrazzld/kanban-api/internal/domain"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PasswordChangeRequest defines the payload for changing the caller's password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,min=1"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

// UserResponse is the public representation of a user. The password hash
// never leaves the server.
type UserResponse struct {
	Username string `json:"username"`
	Disabled bool   `json:"disabled"`
	IsAdmin  bool   `json:"is_admin"`
}

// NewUserResponse maps a domain user to its public representation.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Disabled: user.Disabled,
		IsAdmin:  user.Admin(),
	}
}

// TaskCreateRequest defines the payload for creating a task. Column and
// priority default when omitted; membership against the configured board
// is checked by the handler.
type TaskCreateRequest struct {
	Title       string     `json:"title"       validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"    validate:"max=50"`
	DueDate     *time.Time `json:"due_date"`
	Column      string     `json:"column"`
}

// TaskUpdateRequest defines the payload for partially updating a task.
// Absent fields leave the stored value untouched; fields present in the
// JSON body overwrite it, even with an empty value.
type TaskUpdateRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"    validate:"omitempty,max=50"`
	DueDate     *time.Time `json:"due_date"`
	Column      *string    `json:"column"`
}

// Update converts the request into the store-level partial update.
func (r TaskUpdateRequest) Update() domain.TaskUpdate {
	return domain.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Category:    r.Category,
		DueDate:     r.DueDate,
		Column:      r.Column,
	}
}

// TaskMoveRequest defines the payload for moving a task to a different
// column. Position is accepted for forward compatibility; ordering within
// a column is not persisted.
type TaskMoveRequest struct {
	Column   string `json:"column" validate:"required,min=1"`
	Position *int   `json:"position"`
}

// CategoryCreateRequest defines the payload for registering a category.
type CategoryCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// ColumnsResponse lists the configured workflow columns in order.
type ColumnsResponse struct {
	Columns []string `json:"columns"`
}

// PrioritiesResponse lists the configured priority levels.
type PrioritiesResponse struct {
	Priorities []string `json:"priorities"`
}

// CategoriesResponse lists the effective category set.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
