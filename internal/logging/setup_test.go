package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Console(t *testing.T) {
	logger, cleanup, err := New(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()

	logger.Debug().Str("project", "zlib").Msg("hello")
}

func TestNew_FileLogging(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "logs", "conanhost.log")

	logger, cleanup, err := New(Config{
		Level:  "info",
		Format: "json",
		File: FileConfig{
			Enabled:    true,
			Path:       logPath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	})
	require.NoError(t, err)

	logger.Info().Msg("to file")
	cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	fi, err := os.Stat(filepath.Dir(logPath))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), fi.Mode().Perm())
}

func TestNew_FileLoggingRequiresPath(t *testing.T) {
	_, cleanup, err := New(Config{File: FileConfig{Enabled: true}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logging.file.path is required")
	assert.NotNil(t, cleanup)
}

func TestNew_FileLoggingUnwritableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, _, err := New(Config{File: FileConfig{Enabled: true, Path: filepath.Join(file, "logs", "conanhost.log")}})

	assert.ErrorContains(t, err, "failed to create logs directory")
}
