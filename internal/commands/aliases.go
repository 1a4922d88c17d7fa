package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/model"
	"github.com/peerflow-dev/peerflow/internal/session"
)

func newAliasCommand() *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage name alias mappings",
	}
	aliasCmd.AddCommand(newAliasAddCommand())
	aliasCmd.AddCommand(newAliasRemoveCommand())
	aliasCmd.AddCommand(newAliasListCommand())
	return aliasCmd
}

func newAliasAddCommand() *cobra.Command {
	var canonical string
	var aliases []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a canonical name and its variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasAdd(cmd, canonical, aliases)
		},
	}

	cmd.Flags().StringVar(&canonical, "canonical", "", "display name for the person (required)")
	_ = cmd.MarkFlagRequired("canonical")
	cmd.Flags().StringArrayVar(&aliases, "alias", nil, "variant name (repeatable, required)")
	_ = cmd.MarkFlagRequired("alias")

	return cmd
}

func runAliasAdd(cmd *cobra.Command, canonical string, aliases []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}

	if err := sess.AddAlias(model.AliasMapping{Canonical: canonical, Aliases: aliases}); err != nil {
		return err
	}
	if err := session.Save(cfg.Session.Path, sess); err != nil {
		return err
	}

	cmd.Printf("Mapped %s -> %s\n", strings.Join(aliases, ", "), canonical)
	return nil
}

func newAliasRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <canonical>",
		Short: "Delete the mapping with the given canonical name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasRemove(cmd, args[0])
		},
	}
	return cmd
}

func runAliasRemove(cmd *cobra.Command, canonical string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}

	if !sess.RemoveAlias(canonical) {
		return fmt.Errorf("no mapping with canonical name %q", canonical)
	}
	if err := session.Save(cfg.Session.Path, sess); err != nil {
		return err
	}

	cmd.Printf("Removed mapping for %s\n", canonical)
	return nil
}

func newAliasListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recorded alias mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasList(cmd)
		},
	}
	return cmd
}

func runAliasList(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}

	if len(sess.Aliases) == 0 {
		cmd.Println("No alias mappings recorded.")
		return nil
	}
	for _, m := range sess.Aliases {
		cmd.Printf("%s: %s\n", m.Canonical, strings.Join(m.Aliases, ", "))
	}
	return nil
}
