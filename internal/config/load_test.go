package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for a test and returns a cleanup
// function restoring the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"KANBAN_AUTH_JWT_SECRET": "thisisasecretkeythatis32charslong!!",
		"KANBAN_SERVER_PORT":     "",
		"KANBAN_SERVER_LOG_LEVEL": "",
		"KANBAN_STORAGE_DATA_DIR": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "data", cfg.Storage.DataDir, "Default data dir should be 'data'")
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 60*24, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, []string{"Recurring", "Backlog", "In Progress", "Review", "Done"}, cfg.Board.Columns)
	assert.Equal(t, []string{"High", "Medium", "Low"}, cfg.Board.Priorities)
}

func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"KANBAN_SERVER_PORT":      "9090",
		"KANBAN_SERVER_LOG_LEVEL": "debug",
		"KANBAN_STORAGE_DATA_DIR": "/var/lib/kanban",
		"KANBAN_AUTH_JWT_SECRET":  "thisisasecretkeythatis32charslong!!",
		"KANBAN_ADMIN_USERNAME":   "boardmaster",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "/var/lib/kanban", cfg.Storage.DataDir)
	assert.Equal(t, "thisisasecretkeythatis32charslong!!", cfg.Auth.JWTSecret)
	assert.Equal(t, "boardmaster", cfg.Admin.Username)
}

func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "missing jwt secret",
			envVars: map[string]string{
				"KANBAN_AUTH_JWT_SECRET": "",
			},
		},
		{
			name: "jwt secret too short",
			envVars: map[string]string{
				"KANBAN_AUTH_JWT_SECRET": "tooshort",
			},
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"KANBAN_AUTH_JWT_SECRET":  "thisisasecretkeythatis32charslong!!",
				"KANBAN_SERVER_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "port out of range",
			envVars: map[string]string{
				"KANBAN_AUTH_JWT_SECRET": "thisisasecretkeythatis32charslong!!",
				"KANBAN_SERVER_PORT":     "70000",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			assert.Error(t, err, "Load() should fail validation")
			assert.Nil(t, cfg)
		})
	}
}

func TestBoardConfigValidators(t *testing.T) {
	board := BoardConfig{
		Columns:    []string{"Backlog", "Done"},
		Priorities: []string{"High", "Medium", "Low"},
	}

	assert.True(t, board.ValidColumn("Backlog"))
	assert.False(t, board.ValidColumn("Bogus"))
	assert.True(t, board.ValidPriority("Low"))
	assert.False(t, board.ValidPriority("Critical"))
}
