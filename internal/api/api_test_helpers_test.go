package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	apiMiddleware "github.com/phrazzld/kanban-api/internal/api/middleware"
	"github.com/phrazzld/kanban-api/internal/config"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/platform/jsonfile"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/phrazzld/kanban-api/internal/service/auth"
)

// testEnv wires real jsonfile stores in a temp dir behind the full route
// table, so handler tests exercise the same path as production requests.
type testEnv struct {
	router        http.Handler
	taskStore     *jsonfile.TaskStore
	userStore     *jsonfile.UserStore
	categoryStore *jsonfile.CategoryStore
	jwtService    auth.JWTService
	hasher        *auth.BcryptHasher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	taskStore, err := jsonfile.NewTaskStore(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	userStore, err := jsonfile.NewUserStore(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	categoryStore, err := jsonfile.NewCategoryStore(filepath.Join(dir, "categories.json"))
	require.NoError(t, err)

	board := config.BoardConfig{
		Columns:    []string{"Recurring", "Backlog", "In Progress", "Review", "Done"},
		Priorities: []string{"High", "Medium", "Low"},
	}

	jwtService := auth.NewTestJWTService(
		"test-secret-that-is-long-enough-for-testing",
		time.Hour,
		time.Now,
	)
	hasher := auth.NewBcryptHasher()

	boardService := service.NewBoardService(taskStore, categoryStore, board)
	authHandler := NewAuthHandler(userStore, jwtService, hasher, hasher)
	taskHandler := NewTaskHandler(taskStore, boardService, board)
	categoryHandler := NewCategoryHandler(categoryStore, boardService)
	userHandler := NewUserHandler(userStore)
	authMW := apiMiddleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/auth/register", authHandler.Register)
			r.Get("/auth/me", authHandler.Me)
			r.Put("/auth/password", authHandler.ChangePassword)
			r.Get("/tasks", taskHandler.List)
			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks/columns", taskHandler.Columns)
			r.Get("/tasks/priorities", taskHandler.Priorities)
			r.Get("/tasks/categories", taskHandler.Categories)
			r.Get("/tasks/board", taskHandler.Board)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Patch("/tasks/{id}/move", taskHandler.Move)
			r.Delete("/tasks/{id}", taskHandler.Delete)
			r.Get("/categories", categoryHandler.List)
			r.Post("/categories", categoryHandler.Create)
			r.Delete("/categories/{name}", categoryHandler.Delete)
			r.Get("/users", userHandler.List)
			r.Delete("/users/{username}", userHandler.Delete)
		})
	})

	return &testEnv{
		router:        r,
		taskStore:     taskStore,
		userStore:     userStore,
		categoryStore: categoryStore,
		jwtService:    jwtService,
		hasher:        hasher,
	}
}

// createUser registers a user directly in the store and returns a valid
// token for them.
func (env *testEnv) createUser(t *testing.T, username, password string, isAdmin bool) string {
	t.Helper()

	hash, err := env.hasher.Hash(password)
	require.NoError(t, err)

	user, err := domain.NewUser(username, hash)
	require.NoError(t, err)
	user.IsAdmin = isAdmin
	require.NoError(t, env.userStore.Create(context.Background(), user))

	token, err := env.jwtService.GenerateToken(context.Background(), username)
	require.NoError(t, err)
	return token
}

// request performs an HTTP request against the test router and returns
// the recorder.
func (env *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
