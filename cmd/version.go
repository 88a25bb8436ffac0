package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(build BuildInfo) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, build.Version)
				return
			}
			fmt.Fprintf(out, "conanhost %s\n", build.Version)
			if build.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", build.Commit)
			}
			if build.Date != "" {
				fmt.Fprintf(out, "Built: %s\n", build.Date)
			}
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")
	return cmd
}
