package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/buildinfo"
	"github.com/peerflow-dev/peerflow/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "peerflow",
		Short:   "Peer-to-peer payment flow analysis",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultPath, "config file")

	rootCmd.AddCommand(newIngestCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newSuggestCommand())
	rootCmd.AddCommand(newAliasCommand())
	rootCmd.AddCommand(newRemoveCommand())
	rootCmd.AddCommand(newFilterCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newClearCommand())

	return rootCmd
}
