// Package export renders transactions and flows losslessly as CSV and
// JSON for consumption outside the tool. encoding/csv supplies field
// quoting with embedded quotes doubled; JSON datetimes are ISO-8601.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/peerflow-dev/peerflow/internal/model"
)

const dateFormat = "2006-01-02"

// transactionHeader matches the columns of the original export surface.
var transactionHeader = []string{"ID", "Date", "From", "To", "Amount", "Type", "Status", "Note", "Source File"}

var flowHeader = []string{"Source", "Target", "Amount", "Sentiment"}

// WriteTransactionsCSV writes transactions with a header row.
func WriteTransactionsCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(transactionHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txns {
		row := []string{
			tx.ID,
			tx.Datetime.Format(dateFormat),
			tx.From,
			tx.To,
			tx.Amount.StringFixed(2),
			tx.Type,
			tx.Status,
			tx.Note,
			tx.SourceFile,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteFlowsCSV writes aggregated flows with a header row.
func WriteFlowsCSV(w io.Writer, flows []model.Flow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(flowHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, f := range flows {
		row := []string{f.Source, f.Target, f.Value.StringFixed(2), string(f.Sentiment)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Document is the JSON export payload.
type Document struct {
	Transactions []model.Transaction `json:"transactions"`
	Flows        []model.Flow        `json:"flows"`
	Stats        model.SummaryStats  `json:"stats"`
}

// WriteJSON writes the full derived dataset as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding export JSON: %w", err)
	}
	return nil
}
