package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/housesell/internal/flagx"
	"github.com/dmitrijs2005/housesell/internal/timex"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Absent keys stay nil and leave the current value alone. Durations go
// through timex.Duration so they can be written as "5s" or as nanoseconds.
type FileConfig struct {
	Backend           *string         `json:"backend" yaml:"backend"`
	DataDir           *string         `json:"data_dir" yaml:"data_dir"`
	SQLiteFile        *string         `json:"sqlite_file" yaml:"sqlite_file"`
	SQLiteBusyTimeout *timex.Duration `json:"sqlite_busy_timeout" yaml:"sqlite_busy_timeout"`
	PostgresDSN       *string         `json:"postgres_dsn" yaml:"postgres_dsn"`
	SeedSamples       *bool           `json:"seed_samples" yaml:"seed_samples"`
	MinPasswordLength *int            `json:"min_password_length" yaml:"min_password_length"`
	LogLevel          *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	setIf(&cfg.Backend, fc.Backend)
	setIf(&cfg.DataDir, fc.DataDir)
	setIf(&cfg.SQLiteFile, fc.SQLiteFile)
	setIf(&cfg.PostgresDSN, fc.PostgresDSN)
	setIf(&cfg.SeedSamples, fc.SeedSamples)
	setIf(&cfg.MinPasswordLength, fc.MinPasswordLength)
	setIf(&cfg.LogLevel, fc.LogLevel)
	if fc.SQLiteBusyTimeout != nil {
		cfg.SQLiteBusyTimeout = fc.SQLiteBusyTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
