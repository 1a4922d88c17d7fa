package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/aggregate"
	"github.com/peerflow-dev/peerflow/internal/export"
)

func newExportCommand() *cobra.Command {
	var format, what, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions or flows as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, format, what, out)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&what, "what", "transactions", "csv payload: transactions or flows")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, format, what, out string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	view := aggregate.Compute(sess.Transactions, sess.Options())

	switch format {
	case "json":
		return export.WriteJSON(w, export.Document{
			Transactions: view.Transactions,
			Flows:        view.Flows,
			Stats:        view.Stats,
		})
	case "csv":
		switch what {
		case "transactions":
			return export.WriteTransactionsCSV(w, view.Transactions)
		case "flows":
			return export.WriteFlowsCSV(w, view.Flows)
		default:
			return fmt.Errorf("unknown --what %q (want transactions or flows)", what)
		}
	default:
		return fmt.Errorf("unknown --format %q (want csv or json)", format)
	}
}
