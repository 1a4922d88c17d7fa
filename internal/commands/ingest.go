package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peerflow-dev/peerflow/internal/logger"
	"github.com/peerflow-dev/peerflow/internal/model"
	"github.com/peerflow-dev/peerflow/internal/parser"
	"github.com/peerflow-dev/peerflow/internal/session"
)

func newIngestCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "ingest [file.csv...]",
		Short: "Parse payment CSV exports into the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, args, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "ingest every *.csv in a directory")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string, dir string) error {
	log := logger.New()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(cfg)
	if err != nil {
		return err
	}

	paths := append([]string{}, args...)
	if dir != "" {
		scanned, err := scanCSVDir(dir)
		if err != nil {
			return err
		}
		paths = append(paths, scanned...)
	}
	if len(paths) == 0 {
		return errors.New("no files to ingest: pass CSV paths or --dir")
	}

	added := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		name := filepath.Base(path)

		txns, diags := parser.Parse(string(data), name)
		for _, d := range diags {
			log.Warn().Str("file", name).Msg(d)
		}

		if err := sess.AddBatch(model.UploadedFile{Name: name, Size: int64(len(data))}, txns); err != nil {
			log.Warn().Msg(err.Error())
			continue
		}
		added += len(txns)
		log.Info().Str("file", name).Int("transactions", len(txns)).Msg("ingested")
	}

	if err := session.Save(cfg.Session.Path, sess); err != nil {
		return err
	}

	cmd.Printf("Ingested %d transactions. Session holds %d transactions from %d files.\n",
		added, len(sess.Transactions), len(sess.UploadedFiles))
	return nil
}

// scanCSVDir returns the CSV files in dir, mirroring a drop-folder flow.
func scanCSVDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading ingest dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
