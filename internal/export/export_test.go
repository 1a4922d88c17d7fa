package export

import (
	"bytes"
	"encoding/json"
	"strings"
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

func TestWriteTransactionsCSV(t *testing.T) {
	txns := []model.Transaction{
		{
			ID:         "a.csv-1",
			Datetime:   time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			Type:       "Payment",
			Status:     "Complete",
			Note:       `said "thanks", paid late`,
			From:       "Alice",
			To:         "Bob",
			Amount:     dec("-25"),
			SourceFile: "a.csv",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, txns))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Date,From,To,Amount,Type,Status,Note,Source File", lines[0])
	assert.Contains(t, lines[1], "2024-03-15")
	assert.Contains(t, lines[1], "-25.00")
	assert.Contains(t, lines[1], `"said ""thanks"", paid late"`, "embedded quotes are doubled")
}

func TestWriteFlowsCSV(t *testing.T) {
	flows := []model.Flow{
		{Source: "Alice", Target: "Bob", Value: dec("50"), Sentiment: model.SentimentNegative},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFlowsCSV(&buf, flows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Source,Target,Amount,Sentiment", lines[0])
	assert.Equal(t, "Alice,Bob,50.00,negative", lines[1])
}

func TestWriteJSON(t *testing.T) {
	doc := Document{
		Transactions: []model.Transaction{
			{ID: "a.csv-1", Datetime: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), From: "Alice", To: "Bob", Amount: dec("-25")},
		},
		Flows: []model.Flow{
			{Source: "Alice", Target: "Bob", Value: dec("25"), Sentiment: model.SentimentNegative},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))

	assert.Contains(t, buf.String(), "2024-03-15T10:00:00Z", "datetimes serialize as ISO-8601")

	var back Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back.Transactions, 1)
	assert.True(t, dec("-25").Equal(back.Transactions[0].Amount))
	assert.Equal(t, model.SentimentNegative, back.Flows[0].Sentiment)
}
