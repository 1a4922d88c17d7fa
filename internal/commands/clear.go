package commands

import (
	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/session"
)

func newClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd)
		},
	}
	return cmd
}

func runClear(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := session.Clear(cfg.Session.Path); err != nil {
		return err
	}
	cmd.Println("Session cleared.")
	return nil
}
