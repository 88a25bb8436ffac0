package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/conanhost/internal/app"
)

// NewServeCommand creates the serve command.
func NewServeCommand(configPath *string, build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Conan repository server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), *configPath, build.Version)
		},
	}
}
