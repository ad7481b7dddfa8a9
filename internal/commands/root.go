package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "In-memory bank ledger with undoable transactions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newInterestCommand())

	return rootCmd
}
