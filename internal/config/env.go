package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "HOUSESELL_"

// parseEnv overlays cfg with HOUSESELL_* variables. Unset variables leave
// fields untouched. A non-nil environ replaces the process environment.
func parseEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
