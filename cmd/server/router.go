package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/kanban-api/internal/api"
	apiMiddleware "github.com/phrazzld/kanban-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.hasher, app.hasher)
	taskHandler := api.NewTaskHandler(app.taskStore, app.boardService, app.config.Board)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.boardService)
	userHandler := api.NewUserHandler(app.userStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

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

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	// Serve the frontend when a static dir is configured and present.
	if dir := app.config.Server.StaticDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			r.Handle("/*", http.FileServer(http.Dir(dir)))
		} else {
			app.logger.Warn("static dir configured but not found", "dir", dir)
		}
	}

	return r
}
