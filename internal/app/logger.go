package app

import (
	"path/filepath"

	"github.com/bnema/zerowrap"

	"github.com/bnema/conanhost/internal/logging"
)

// initLogger builds the root logger. File logging defaults to
// {data_dir}/logs/conanhost.log when no path is configured.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logCfg := cfg.Logging
	if logCfg.File.Enabled && logCfg.File.Path == "" {
		logCfg.File.Path = resolveLogFilePath(cfg)
	}
	return logging.New(logCfg)
}

func resolveLogFilePath(cfg Config) string {
	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	return filepath.Join(dataDir, "logs", ConfigName+".log")
}
