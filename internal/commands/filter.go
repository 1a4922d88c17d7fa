package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/session"
)

func newFilterCommand() *cobra.Command {
	var hideMerchants bool
	var fromStr, toStr string
	var reset bool

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Set the session's merchant and date filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, filterArgs{
				hideMerchants: hideMerchants,
				hideSet:       cmd.Flags().Changed("hide-merchants"),
				fromStr:       fromStr,
				fromSet:       cmd.Flags().Changed("from"),
				toStr:         toStr,
				toSet:         cmd.Flags().Changed("to"),
				reset:         reset,
			})
		},
	}

	cmd.Flags().BoolVar(&hideMerchants, "hide-merchants", false, "exclude transactions involving known merchants")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().BoolVar(&reset, "reset", false, "clear all filters")

	return cmd
}

type filterArgs struct {
	hideMerchants bool
	hideSet       bool
	fromStr       string
	fromSet       bool
	toStr         string
	toSet         bool
	reset         bool
}

func runFilter(cmd *cobra.Command, args filterArgs) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}

	if args.reset {
		sess.HideMerchants = false
		sess.Start = time.Time{}
		sess.End = time.Time{}
	}
	if args.hideSet {
		sess.HideMerchants = args.hideMerchants
	}
	if args.fromSet {
		if sess.Start, err = parseFlagDate(args.fromStr); err != nil {
			return err
		}
	}
	if args.toSet {
		if sess.End, err = parseFlagDate(args.toStr); err != nil {
			return err
		}
	}

	if err := session.Save(cfg.Session.Path, sess); err != nil {
		return err
	}

	cmd.Printf("Filters: hide-merchants=%v", sess.HideMerchants)
	if !sess.Start.IsZero() {
		cmd.Printf(" from=%s", sess.Start.Format(flagDateFormat))
	}
	if !sess.End.IsZero() {
		cmd.Printf(" to=%s", sess.End.Format(flagDateFormat))
	}
	cmd.Println()
	return nil
}
