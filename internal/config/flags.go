package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/housesell/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend
//	-d string   data directory
//	-dsn string PostgreSQL DSN
//	-seed       seed sample listings (use -seed=false to disable)
//	-l string   log level
//
// Args are filtered with flagx.FilterArgs so that flags owned by other
// loaders (such as -c) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-b", "-d", "-dsn", "-seed", "-l"})

	fs := flag.NewFlagSet("housesell", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend: sqlite, postgres or memory")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.PostgresDSN, "dsn", cfg.PostgresDSN, "PostgreSQL connection string")
	fs.BoolVar(&cfg.SeedSamples, "seed", cfg.SeedSamples, "seed sample listings into an empty collection")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
