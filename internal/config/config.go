// Package config defines service configuration and loading.
//
// Conventions: defaults come from New, a YAML file named by
// SCOREBOOK_CONFIG and SCOREBOOK_-prefixed env vars layer on top, and
// callers go through Load.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DBPath points at the SQLite database file. Empty selects the
	// in-memory store.
	DBPath string `koanf:"db_path"`

	// BcryptCost is the work factor for hashing accepted passwords.
	BcryptCost int `koanf:"bcrypt_cost"`

	// SeedDemo loads a demo coach and roster on startup.
	SeedDemo bool `koanf:"seed_demo"`

	// HTTP server timeouts.
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Default values.
const (
	defaultAddr            = ":8080"
	defaultLogLevel        = "info"
	defaultBcryptCost      = 10
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 30 * time.Second
)

// New creates a Config with defaults applied.
func New() *Config {
	return &Config{
		Addr:            defaultAddr,
		LogLevel:        defaultLogLevel,
		BcryptCost:      defaultBcryptCost,
		ReadTimeout:     defaultReadTimeout,
		WriteTimeout:    defaultWriteTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}
