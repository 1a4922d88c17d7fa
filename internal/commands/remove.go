package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/session"
)

func newRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <file.csv>",
		Short: "Drop an ingested file and its transactions from the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0])
		},
	}
	return cmd
}

func runRemove(cmd *cobra.Command, name string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}

	found := false
	for _, f := range sess.UploadedFiles {
		if f.Name == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no ingested file named %q", name)
	}

	sess.RemoveFile(name)
	if err := session.Save(cfg.Session.Path, sess); err != nil {
		return err
	}

	cmd.Printf("Removed %s. Session holds %d transactions from %d files.\n",
		name, len(sess.Transactions), len(sess.UploadedFiles))
	return nil
}
