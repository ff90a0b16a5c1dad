package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
	Admin   AdminConfig   `mapstructure:"admin"   validate:"required"`
	Board   BoardConfig   `mapstructure:"board"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// StaticDir is the directory served at the site root. Empty disables
	// static file serving.
	StaticDir string `mapstructure:"static_dir"`
}

// StorageConfig contains the locations of the persisted collections.
type StorageConfig struct {
	// DataDir is the directory holding the JSON collection files.
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// AdminConfig holds the default admin account provisioned at startup.
type AdminConfig struct {
	Username string `mapstructure:"username" validate:"required,min=3,max=50"`
	Password string `mapstructure:"password" validate:"required,min=6"`
}

// BoardConfig defines the workflow columns and priority levels tasks may use.
type BoardConfig struct {
	Columns    []string `mapstructure:"columns"    validate:"required,min=1,dive,min=1"`
	Priorities []string `mapstructure:"priorities" validate:"required,min=1,dive,min=1"`
}

// ValidColumn reports whether name is one of the configured workflow columns.
func (b BoardConfig) ValidColumn(name string) bool {
	for _, c := range b.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ValidPriority reports whether name is one of the configured priority levels.
func (b BoardConfig) ValidPriority(name string) bool {
	for _, p := range b.Priorities {
		if p == name {
			return true
		}
	}
	return false
}
