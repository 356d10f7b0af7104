// Package config loads runtime configuration for the HouseSell terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables prefixed with HOUSESELL_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-b string     storage backend: sqlite, postgres or memory
//	-d string     data directory for the SQLite database
//	-dsn string   PostgreSQL connection string
//	-seed bool    write the sample listings into an empty collection
//	-l string     log level: debug, info, warn or error
//
// Environment
//
//	HOUSESELL_BACKEND, HOUSESELL_DATA_DIR, HOUSESELL_SQLITE_FILE,
//	HOUSESELL_SQLITE_BUSY_TIMEOUT, HOUSESELL_POSTGRES_DSN,
//	HOUSESELL_SEED_SAMPLES, HOUSESELL_MIN_PASSWORD_LENGTH, HOUSESELL_LOG_LEVEL
//
// # File schema
//
// Durations may be strings like "5s" or integer nanoseconds:
//
//	{
//	  "backend": "sqlite",
//	  "data_dir": "/var/lib/housesell",
//	  "sqlite_busy_timeout": "5s",
//	  "seed_samples": true,
//	  "log_level": "info"
//	}
package config
