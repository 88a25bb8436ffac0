package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/bnema/conanhost/internal/app"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "", "--help")

	require.NoError(t, err)
	for _, sub := range []string{"serve", "init", "hashpw", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "conanhost 1.2.3")
	assert.Contains(t, out, "Commit: abc123")
	assert.Contains(t, out, "Built: 2024-01-01")

	out, err = execute(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestHashPasswordCommand_Stdin(t *testing.T) {
	out, err := execute(t, "s3cret\n", "hashpw", "--password-stdin")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestHashPasswordCommand_EmptyStdin(t *testing.T) {
	_, err := execute(t, "\n", "hashpw", "--password-stdin")

	assert.ErrorContains(t, err, "must not be empty")
}

func readConfig(t *testing.T, path string) app.Config {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg app.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	return cfg
}

func TestInitCommand_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "conanhost.yaml")

	out, err := execute(t, "", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg := readConfig(t, path)
	assert.Equal(t, ":9300", cfg.Server.Addr)
	assert.Equal(t, app.BackendSQLite, cfg.Storage.Backend)
	assert.Len(t, cfg.Auth.TokenSecret, 64)
	assert.False(t, cfg.Auth.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conanhost.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))

	_, err := execute(t, "", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	_, err = execute(t, "", "init", "--config", path, "--force")
	require.NoError(t, err)
	assert.NotEmpty(t, readConfig(t, path).Auth.TokenSecret)
}

func TestInitCommand_WithAuth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conanhost.yaml")

	_, err := execute(t, "hunter2\n", "init", "--config", path, "--auth", "--username", "ci", "--password-stdin")
	require.NoError(t, err)

	cfg := readConfig(t, path)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "ci", cfg.Auth.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cfg.Auth.PasswordHash), []byte("hunter2")))
	assert.NoError(t, cfg.Validate())
}

func TestRandomSecret_Unique(t *testing.T) {
	a, err := randomSecret()
	require.NoError(t, err)
	b, err := randomSecret()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
