package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/aggregate"
	"github.com/peerflow-dev/peerflow/internal/model"
)

func newReportCommand() *cobra.Command {
	var hideMerchants bool
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show aggregated flows and summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, hideMerchants, cmd.Flags().Changed("hide-merchants"), fromStr, toStr)
		},
	}

	cmd.Flags().BoolVar(&hideMerchants, "hide-merchants", false, "exclude transactions involving known merchants")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date (YYYY-MM-DD, inclusive)")

	return cmd
}

func runReport(cmd *cobra.Command, hideMerchants, hideSet bool, fromStr, toStr string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}
	if len(sess.Transactions) == 0 {
		cmd.Println("No transactions ingested yet. Run 'peerflow ingest' first.")
		return nil
	}

	opts := sess.Options()
	if !sess.HideMerchants {
		opts.HideMerchants = cfg.Display.HideMerchants
	}
	if hideSet {
		opts.HideMerchants = hideMerchants
	}
	if opts.Start, err = overrideDate(fromStr, opts.Start); err != nil {
		return err
	}
	if opts.End, err = overrideDate(toStr, opts.End); err != nil {
		return err
	}

	view := aggregate.Compute(sess.Transactions, opts)

	cmd.Printf("Flows (%d):\n", len(view.Flows))
	for _, f := range view.Flows {
		arrow := "received"
		if f.Sentiment == model.SentimentNegative {
			arrow = "sent"
		}
		cmd.Printf("  %s -> %s  %s  (%s)\n", f.Source, f.Target, f.Value.StringFixed(2), arrow)
	}

	s := view.Stats
	cmd.Printf("\nTotals: sent %s, received %s over %d transactions among %d people\n",
		s.TotalSent.StringFixed(2), s.TotalReceived.StringFixed(2), s.TotalTransactions, s.UniquePeople)

	if len(s.TopPayees) > 0 {
		cmd.Println("\nTop recipients:")
		for _, p := range s.TopPayees {
			cmd.Printf("  %-24s %s\n", p.Name, p.Amount.StringFixed(2))
		}
	}
	if len(s.TopPayers) > 0 {
		cmd.Println("\nTop senders:")
		for _, p := range s.TopPayers {
			cmd.Printf("  %-24s %s\n", p.Name, p.Amount.StringFixed(2))
		}
	}

	return nil
}

// overrideDate replaces current with the flag's value when given.
func overrideDate(flagValue string, current time.Time) (time.Time, error) {
	if flagValue == "" {
		return current, nil
	}
	return parseFlagDate(flagValue)
}
