package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bnema/conanhost/internal/usecase/auth"
)

// NewHashPasswordCommand creates the hashpw command printing a bcrypt hash
// suitable for auth.password_hash.
func NewHashPasswordCommand() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "hashpw",
		Short: "Hash a password for auth.password_hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				password string
				err      error
			)
			if fromStdin {
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

			if fromStdin {
				fmt.Fprintln(cmd.OutOrStdout(), hash)
				return nil
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}
