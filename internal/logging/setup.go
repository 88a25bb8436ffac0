// Package logging maps the service's logging settings onto zerowrap.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/zerowrap"
)

// Config holds the logging settings.
type Config struct {
	Level  string     `mapstructure:"level" yaml:"level"`
	Format string     `mapstructure:"format" yaml:"format"` // console or json
	File   FileConfig `mapstructure:"file" yaml:"file"`
}

// FileConfig enables a rotating log file next to the console output.
type FileConfig struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	Path       string `mapstructure:"path" yaml:"path"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
}

// New builds the root logger. The returned cleanup closes the log file
// and is never nil.
func New(cfg Config) (zerowrap.Logger, func(), error) {
	noop := func() {}
	logConfig := zerowrap.Config{
		Level:  cfg.Level,
		Format: cfg.Format,
	}

	if !cfg.File.Enabled {
		return zerowrap.New(logConfig), noop, nil
	}

	if cfg.File.Path == "" {
		return zerowrap.Default(), noop, fmt.Errorf("logging.file.path is required when file logging is enabled")
	}

	// Create logs directory with secure permissions (0700 - owner only)
	if err := os.MkdirAll(filepath.Dir(cfg.File.Path), 0700); err != nil {
		return zerowrap.Default(), noop, fmt.Errorf("failed to create logs directory: %w", err)
	}

	log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
		Enabled:    true,
		Path:       cfg.File.Path,
		MaxSize:    cfg.File.MaxSize,
		MaxBackups: cfg.File.MaxBackups,
		MaxAge:     cfg.File.MaxAge,
		Compress:   true,
	})
	if err != nil {
		return zerowrap.Default(), noop, fmt.Errorf("failed to create logger with file: %w", err)
	}
	if cleanup == nil {
		cleanup = noop
	}
	return log, cleanup, nil
}
