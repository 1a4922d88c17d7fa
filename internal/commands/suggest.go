package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/aggregate"
	"github.com/peerflow-dev/peerflow/internal/alias"
)

func newSuggestCommand() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest alias merges for similar-looking names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, threshold, cmd.Flags().Changed("threshold"))
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", alias.DefaultThreshold, "similarity threshold (0..1)")

	return cmd
}

func runSuggest(cmd *cobra.Command, threshold float64, thresholdSet bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}

	if !thresholdSet && cfg.Aliases.SuggestThreshold > 0 {
		threshold = cfg.Aliases.SuggestThreshold
	}

	// Candidates come from the pre-alias people pool, minus names a
	// mapping already claims.
	people := aggregate.OriginalPeople(sess.Transactions, sess.Options())
	covered := alias.CoveredNames(sess.Aliases)
	var pool []string
	for _, p := range people {
		if !covered[p] {
			pool = append(pool, p)
		}
	}

	suggestions := alias.FindSimilarNames(pool, threshold)
	if len(suggestions) == 0 {
		cmd.Println("No similar names found.")
		return nil
	}

	for _, s := range suggestions {
		cmd.Printf("%s  <=  %s\n", s.Suggested, strings.Join(s.Names, ", "))
	}
	cmd.Printf("\n%d suggestion(s). Accept one with 'peerflow alias add --canonical NAME --alias VARIANT'.\n", len(suggestions))
	return nil
}
