package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the HouseSell client.
//
// Fields:
//   - Backend: blob store backend ("sqlite", "postgres" or "memory").
//   - DataDir / SQLiteFile: location of the SQLite database.
//   - SQLiteBusyTimeout: how long SQLite waits on a locked database.
//   - PostgresDSN: connection string for the postgres backend (pgx).
//   - SeedSamples: seed the sample listings into an empty collection.
//   - MinPasswordLength: shortest password accepted at signup.
//   - LogLevel: slog level name.
type Config struct {
	Backend           string        `env:"BACKEND"`
	DataDir           string        `env:"DATA_DIR"`
	SQLiteFile        string        `env:"SQLITE_FILE"`
	SQLiteBusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT"`
	PostgresDSN       string        `env:"POSTGRES_DSN"`
	SeedSamples       bool          `env:"SEED_SAMPLES"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH"`
	LogLevel          string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = "sqlite"
	c.DataDir = defaultDataDir()
	c.SQLiteFile = "housesell.db"
	c.SQLiteBusyTimeout = 5 * time.Second
	c.PostgresDSN = ""
	c.SeedSamples = true
	c.MinPasswordLength = 6
	c.LogLevel = "warn"
}

// SQLitePath is the database file location. An absolute SQLiteFile is used
// as is.
func (c *Config) SQLitePath() string {
	if filepath.IsAbs(c.SQLiteFile) {
		return c.SQLiteFile
	}
	return filepath.Join(c.DataDir, c.SQLiteFile)
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Backend {
	case "sqlite":
		if c.SQLiteFile == "" {
			return fmt.Errorf("sqlite backend requires a database file name")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres backend requires a DSN (-dsn or HOUSESELL_POSTGRES_DSN)")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.MinPasswordLength < 1 {
		return fmt.Errorf("minimum password length must be positive, got %d", c.MinPasswordLength)
	}
	return nil
}

// LoadConfig builds a Config from defaults, the optional config file, the
// process environment and os.Args, in that order.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], nil)
}

// load applies every source. A nil environ means the process environment.
func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".housesell"
	}
	return filepath.Join(home, ".housesell")
}
