package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/conanhost/internal/app"
	"github.com/bnema/conanhost/internal/usecase/auth"
)

type initOptions struct {
	force         bool
	withAuth      bool
	username      string
	passwordStdin bool
}

// NewInitCommand creates the init command writing a default configuration file.
func NewInitCommand(configPath *string) *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := *configPath
			if path == "" {
				path = app.DefaultConfigPath()
			}
			if err := runInit(cmd, path, opts); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing configuration file")
	cmd.Flags().BoolVar(&opts.withAuth, "auth", false, "Enable authentication and set the user credentials")
	cmd.Flags().StringVar(&opts.username, "username", "", "Username when --auth is set (prompted when empty)")
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "Read the password from stdin when --auth is set")
	return cmd
}

func runInit(cmd *cobra.Command, path string, opts initOptions) error {
	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	cfg, err := app.DefaultConfig()
	if err != nil {
		return err
	}

	secret, err := randomSecret()
	if err != nil {
		return err
	}
	cfg.Auth.TokenSecret = secret

	if opts.withAuth {
		if err := configureAuth(cmd, &cfg, opts); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	// The file holds the token secret.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func configureAuth(cmd *cobra.Command, cfg *app.Config, opts initOptions) error {
	username := opts.username
	if username == "" {
		var err error
		if username, err = promptUsername("admin"); err != nil {
			return err
		}
	}

	var (
		password string
		err      error
	)
	if opts.passwordStdin {
		password, err = readPasswordLine(cmd.InOrStdin())
	} else {
		password, err = promptPassword()
	}
	if err != nil {
		return err
	}

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return err
	}

	cfg.Auth.Enabled = true
	cfg.Auth.Username = username
	cfg.Auth.PasswordHash = hash
	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
