// Package session holds the in-memory working set for one analysis
// session and its persisted envelope. All state is explicit: the CLI
// loads a session, mutates it, and saves it back; nothing ambient.
package session

import (
	"fmt"
	"time"

	"github.com/peerflow-dev/peerflow/internal/aggregate"
	"github.com/peerflow-dev/peerflow/internal/alias"
	"github.com/peerflow-dev/peerflow/internal/model"
)

// Session is the working set: every parsed transaction, the files they
// came from, alias mappings and the active filters.
type Session struct {
	Transactions  []model.Transaction
	UploadedFiles []model.UploadedFile
	Aliases       []model.AliasMapping
	HideMerchants bool
	Start         time.Time // zero = unbounded
	End           time.Time // zero = unbounded
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// AddBatch appends one ingested file's transactions. A file name already
// in the working set is rejected so re-ingesting cannot double-count.
func (s *Session) AddBatch(file model.UploadedFile, txns []model.Transaction) error {
	for _, f := range s.UploadedFiles {
		if f.Name == file.Name {
			return fmt.Errorf("file %q already uploaded", file.Name)
		}
	}
	file.TransactionCount = len(txns)
	s.UploadedFiles = append(s.UploadedFiles, file)
	s.Transactions = append(s.Transactions, txns...)
	return nil
}

// RemoveFile drops a file and every transaction parsed from it.
func (s *Session) RemoveFile(name string) {
	var files []model.UploadedFile
	for _, f := range s.UploadedFiles {
		if f.Name != name {
			files = append(files, f)
		}
	}
	s.UploadedFiles = files

	var txns []model.Transaction
	for _, tx := range s.Transactions {
		if tx.SourceFile != name {
			txns = append(txns, tx)
		}
	}
	s.Transactions = txns
}

// Clear empties the working set, keeping nothing.
func (s *Session) Clear() {
	*s = Session{}
}

// AddAlias records a mapping after checking its one structural invariant:
// the canonical name must not also be listed as an alias of itself.
func (s *Session) AddAlias(m model.AliasMapping) error {
	if m.Canonical == "" {
		return fmt.Errorf("alias mapping needs a canonical name")
	}
	for _, a := range m.Aliases {
		if a == m.Canonical {
			return fmt.Errorf("canonical name %q cannot be its own alias", m.Canonical)
		}
	}
	s.Aliases = append(s.Aliases, m)
	return nil
}

// RemoveAlias deletes the mapping with the given canonical name and
// reports whether one existed.
func (s *Session) RemoveAlias(canonical string) bool {
	for i, m := range s.Aliases {
		if m.Canonical == canonical {
			s.Aliases = append(s.Aliases[:i], s.Aliases[i+1:]...)
			return true
		}
	}
	return false
}

// Options assembles the aggregation options implied by the session's
// aliases and filters.
func (s *Session) Options() aggregate.Options {
	return aggregate.Options{
		HideMerchants: s.HideMerchants,
		Aliases:       alias.BuildMap(s.Aliases),
		Start:         s.Start,
		End:           s.End,
	}
}
