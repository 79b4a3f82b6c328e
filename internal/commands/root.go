package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dafibh/tripfund/tripfund-backend/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tripfund",
		Short:   "Trip savings calculator",
		Version: fmt.Sprintf("%s (commit: %s)", buildinfo.Version, buildinfo.Commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCalcCommand())

	return rootCmd
}
