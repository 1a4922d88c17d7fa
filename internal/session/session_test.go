package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerflow-dev/peerflow/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleTxns(source string) []model.Transaction {
	return []model.Transaction{
		{
			ID:         source + "-1",
			Datetime:   time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			Type:       "Payment",
			Status:     "Complete",
			From:       "Alice",
			To:         "Bob",
			Amount:     dec("-25.00"),
			SourceFile: source,
		},
	}
}

func TestAddBatchRejectsDuplicateFile(t *testing.T) {
	s := New()
	err := s.AddBatch(model.UploadedFile{Name: "a.csv", Size: 10}, sampleTxns("a.csv"))
	require.NoError(t, err)

	err = s.AddBatch(model.UploadedFile{Name: "a.csv", Size: 10}, sampleTxns("a.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already uploaded")
	assert.Len(t, s.Transactions, 1)
}

func TestRemoveFileDropsItsTransactions(t *testing.T) {
	s := New()
	require.NoError(t, s.AddBatch(model.UploadedFile{Name: "a.csv"}, sampleTxns("a.csv")))
	require.NoError(t, s.AddBatch(model.UploadedFile{Name: "b.csv"}, sampleTxns("b.csv")))

	s.RemoveFile("a.csv")
	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "b.csv", s.Transactions[0].SourceFile)
	require.Len(t, s.UploadedFiles, 1)
	assert.Equal(t, "b.csv", s.UploadedFiles[0].Name)
}

func TestAddAliasRejectsSelfAlias(t *testing.T) {
	s := New()
	err := s.AddAlias(model.AliasMapping{Canonical: "Alex", Aliases: []string{"Alex"}})
	assert.Error(t, err)

	err = s.AddAlias(model.AliasMapping{Canonical: "Alex", Aliases: []string{"alex j"}})
	assert.NoError(t, err)
}

func TestRemoveAlias(t *testing.T) {
	s := New()
	require.NoError(t, s.AddAlias(model.AliasMapping{Canonical: "Alex", Aliases: []string{"aj"}}))
	assert.True(t, s.RemoveAlias("Alex"))
	assert.False(t, s.RemoveAlias("Alex"))
	assert.Empty(t, s.Aliases)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := New()
	require.NoError(t, s.AddBatch(model.UploadedFile{Name: "a.csv", Size: 42}, sampleTxns("a.csv")))
	require.NoError(t, s.AddAlias(model.AliasMapping{Canonical: "Alex", Aliases: []string{"aj"}}))
	s.HideMerchants = true
	s.Start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Save(path, s))

	got, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "a.csv-1", got.Transactions[0].ID)
	assert.True(t, dec("-25.00").Equal(got.Transactions[0].Amount))
	assert.True(t, got.Transactions[0].Datetime.Equal(s.Transactions[0].Datetime))
	assert.Equal(t, s.UploadedFiles, got.UploadedFiles)
	assert.Equal(t, s.Aliases, got.Aliases)
	assert.True(t, got.HideMerchants)
	assert.True(t, got.Start.Equal(s.Start))
	assert.True(t, got.End.IsZero())
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadVersionMismatchDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	stale := map[string]any{"version": 99, "savedAt": time.Now()}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "mismatched envelope is removed, not migrated")
}

func TestEnvelopeDatetimesAreISO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := New()
	require.NoError(t, s.AddBatch(model.UploadedFile{Name: "a.csv"}, sampleTxns("a.csv")))
	require.NoError(t, Save(path, s))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "2024-03-15T10:00:00Z")
	assert.Contains(t, string(raw), `"version": 1`)
}

func TestClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, Save(path, New()))
	require.NoError(t, Clear(path))
	require.NoError(t, Clear(path))
}
