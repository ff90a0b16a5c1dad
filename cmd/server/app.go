package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/phrazzld/kanban-api/internal/config"
	"github.com/phrazzld/kanban-api/internal/domain"
	"github.com/phrazzld/kanban-api/internal/platform/jsonfile"
	"github.com/phrazzld/kanban-api/internal/service"
	"github.com/phrazzld/kanban-api/internal/service/auth"
	"github.com/phrazzld/kanban-api/internal/store"
)

// application holds the initialized dependencies for the server. Stores
// are explicit instances constructed once at startup and injected into
// handlers; there are no package-level singletons.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore     store.TaskStore
	userStore     store.UserStore
	categoryStore store.CategoryStore

	boardService *service.BoardService
	jwtService   auth.JWTService
	hasher       *auth.BcryptHasher
}

// newApplication constructs all application components from the config.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	dataDir := cfg.Storage.DataDir

	taskStore, err := jsonfile.NewTaskStore(filepath.Join(dataDir, "tasks.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}
	userStore, err := jsonfile.NewUserStore(filepath.Join(dataDir, "users.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}
	categoryStore, err := jsonfile.NewCategoryStore(filepath.Join(dataDir, "categories.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to open category store: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        log,
		taskStore:     taskStore,
		userStore:     userStore,
		categoryStore: categoryStore,
		boardService:  service.NewBoardService(taskStore, categoryStore, cfg.Board),
		jwtService:    jwtService,
		hasher:        auth.NewBcryptHasher(),
	}, nil
}

// ensureDefaultAdmin provisions the configured admin account if no user
// with that name exists yet, so a fresh deployment is always reachable.
func (app *application) ensureDefaultAdmin(ctx context.Context) error {
	exists, err := app.userStore.Exists(ctx, app.config.Admin.Username)
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := app.hasher.Hash(app.config.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := domain.NewUser(app.config.Admin.Username, hash)
	if err != nil {
		return fmt.Errorf("invalid admin account config: %w", err)
	}
	admin.IsAdmin = true

	if err := app.userStore.Create(ctx, admin); err != nil {
		// A concurrent boot may have created it first.
		if errors.Is(err, store.ErrUsernameExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	app.logger.Info("default admin account created", "username", app.config.Admin.Username)
	return nil
}

// run starts the HTTP server and blocks until shutdown completes.
func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:      app.setupRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		app.logger.Info("shutting down server", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	app.logger.Info("server starting", "port", app.config.Server.Port)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdownErr
}
