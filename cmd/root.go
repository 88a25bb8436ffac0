// Package cmd holds the conanhost command line.
package cmd

import (
	"github.com/spf13/cobra"
)

// BuildInfo is injected at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the conanhost root command with every subcommand attached.
func NewRootCommand(build BuildInfo) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "conanhost",
		Short:         "conanhost - hosted Conan package repository",
		Long:          `conanhost stores Conan recipes and binary packages and serves them to Conan clients.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default searches ., ~/.config/conanhost, /etc/conanhost)")

	root.AddCommand(NewServeCommand(&configPath, build))
	root.AddCommand(NewInitCommand(&configPath))
	root.AddCommand(NewHashPasswordCommand())
	root.AddCommand(NewVersionCommand(build))

	return root
}

// Execute runs the root command.
func Execute(version, commit, date string) error {
	return NewRootCommand(BuildInfo{Version: version, Commit: commit, Date: date}).Execute()
}
