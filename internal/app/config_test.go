package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/conanhost/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conanhost.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	_, cfg, err := initConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, ":9300", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:9300", cfg.Server.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, DefaultDataDir(), cfg.Storage.DataDir)
	assert.False(t, cfg.Auth.Enabled)
	assert.True(t, cfg.Auth.AnonymousRead)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 100, cfg.Logging.File.MaxSize)
	assert.InDelta(t, 1.0, cfg.Telemetry.TraceSampleRate, 0.0001)
}

func TestInitConfig_FileValues(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
server:
  addr: ":8080"
  base_url: "https://conan.example.com/"
storage:
  backend: memory
ratelimit:
  trusted_proxies: ["10.0.0.0/8"]
logging:
  format: json
`)

	_, cfg, err := initConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "https://conan.example.com", cfg.Server.BaseURL)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.RateLimit.TrustedProxies)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONANHOST_SERVER_ADDR", ":7000")
	t.Setenv("CONANHOST_STORAGE_BACKEND", "memory")
	t.Setenv("CONANHOST_AUTH_TOKEN_TTL", "1h")

	_, cfg, err := initConfig(writeConfig(t, "server:\n  addr: \":8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestInitConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CONANHOST_LOGGING_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CONANHOST_LOGGING_LEVEL") })

	_, cfg, err := initConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := initConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestInitConfig_InvalidFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := initConfig(writeConfig(t, "server: [unclosed"))

	assert.ErrorContains(t, err, "failed to load config")
}

func validConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"relative base url", func(c *Config) { c.Server.BaseURL = "/conan" }, "server.base_url"},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "s3" }, "storage.backend"},
		{"sqlite without data dir", func(c *Config) { c.Storage.DataDir = "" }, "storage.data_dir"},
		{"memory without data dir", func(c *Config) { c.Storage.Backend = BackendMemory; c.Storage.DataDir = "" }, ""},
		{"auth without credentials", func(c *Config) { c.Auth.Enabled = true }, "auth.username"},
		{"auth with short secret", func(c *Config) {
			c.Auth.Enabled = true
			c.Auth.Username = "admin"
			c.Auth.PasswordHash = "$2a$12$hash"
			c.Auth.TokenSecret = "short"
		}, "auth.token_secret"},
		{"auth complete", func(c *Config) {
			c.Auth.Enabled = true
			c.Auth.Username = "admin"
			c.Auth.PasswordHash = "$2a$12$hash"
			c.Auth.TokenSecret = "0123456789abcdef0123456789abcdef"
		}, ""},
		{"auto tls without domain", func(c *Config) { c.Server.TLS.Auto = true }, "server.tls.domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestResolveLogFilePath(t *testing.T) {
	cfg := validConfig(t)
	cfg.Storage.DataDir = "/srv/conan"

	assert.Equal(t, "/srv/conan/logs/conanhost.log", resolveLogFilePath(cfg))
}

func TestInitLogger_FileUnderDataDir(t *testing.T) {
	cfg := validConfig(t)
	cfg.Storage.DataDir = t.TempDir()
	cfg.Logging.File.Enabled = true

	log, cleanup, err := initLogger(cfg)
	require.NoError(t, err)
	log.Info().Msg("hello")
	cleanup()

	assert.FileExists(t, filepath.Join(cfg.Storage.DataDir, "logs", "conanhost.log"))
}
