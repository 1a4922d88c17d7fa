package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/peerflow-dev/peerflow/internal/model"
)

// Version is the envelope format version. A stored envelope with any other
// version is discarded, never migrated.
const Version = 1

// envelope is the on-disk session layout. Datetimes serialize as ISO-8601
// through encoding/json's RFC 3339 handling of time.Time.
type envelope struct {
	Version       int                  `json:"version"`
	SavedAt       time.Time            `json:"savedAt"`
	Transactions  []model.Transaction  `json:"transactions"`
	UploadedFiles []model.UploadedFile `json:"uploadedFiles"`
	Aliases       []model.AliasMapping `json:"aliases"`
	HideMerchants bool                 `json:"hideMerchants"`
	StartDate     *time.Time           `json:"startDate"`
	EndDate       *time.Time           `json:"endDate"`
}

// Save writes the session to path as a versioned JSON envelope.
func Save(path string, s *Session) error {
	env := envelope{
		Version:       Version,
		SavedAt:       time.Now().UTC(),
		Transactions:  s.Transactions,
		UploadedFiles: s.UploadedFiles,
		Aliases:       s.Aliases,
		HideMerchants: s.HideMerchants,
	}
	if !s.Start.IsZero() {
		t := s.Start
		env.StartDate = &t
	}
	if !s.End.IsZero() {
		t := s.End
		env.EndDate = &t
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Load reads a session envelope from path. A missing file or a version
// mismatch yields a nil session and no error; the mismatched envelope is
// removed rather than migrated.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}

	if env.Version != Version {
		_ = os.Remove(path)
		return nil, nil
	}

	s := &Session{
		Transactions:  env.Transactions,
		UploadedFiles: env.UploadedFiles,
		Aliases:       env.Aliases,
		HideMerchants: env.HideMerchants,
	}
	if env.StartDate != nil {
		s.Start = *env.StartDate
	}
	if env.EndDate != nil {
		s.End = *env.EndDate
	}
	return s, nil
}

// Clear deletes the stored envelope if present.
func Clear(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
