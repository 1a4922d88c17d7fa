package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/config"
	"github.com/peerflow-dev/peerflow/internal/session"
)

// flagDateFormat is the layout for --from/--to bounds.
const flagDateFormat = "2006-01-02"

// loadConfig reads the config named by the inherited --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// loadSession returns the stored session, or a fresh one when none exists
// or the stored envelope was discarded.
func loadSession(cfg *config.Config) (*session.Session, error) {
	s, err := session.Load(cfg.Session.Path)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = session.New()
	}
	return s, nil
}

// parseFlagDate parses a --from/--to value, where empty means unset.
func parseFlagDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(flagDateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return t, nil
}
