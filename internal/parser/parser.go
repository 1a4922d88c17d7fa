// Package parser converts raw CSV text into validated transactions plus a
// list of human-readable diagnostics. It performs no I/O and never fails
// outright when a partial result is obtainable: structural problems (no
// usable header row, missing mandatory columns) end the parse for that file
// with zero transactions, while row-level defects are skipped and counted.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peerflow-dev/peerflow/internal/model"
	"github.com/peerflow-dev/peerflow/internal/normalize"
	"github.com/peerflow-dev/peerflow/internal/schema"
)

const (
	defaultType   = "Payment"
	defaultStatus = "Complete"

	// maxRowDiagnostics caps how many malformed-row messages one file
	// may contribute.
	maxRowDiagnostics = 5
)

// Parse reads CSV text and returns the transactions it yields along with
// diagnostics. Diagnostics are data, not errors: the caller always receives
// whatever rows were parseable.
func Parse(csvText, sourceFileName string) ([]model.Transaction, []string) {
	var diags []string

	rows, rowDiags := readRows(csvText)
	diags = append(diags, rowDiags...)

	if len(rows) == 0 {
		diags = append(diags, "CSV file is empty")
		return nil, diags
	}

	headerIdx := schema.FindHeaderRow(rows)
	if headerIdx == -1 {
		if len(rows[0]) >= 3 {
			headerIdx = 0
			diags = append(diags, "Using first row as headers - file format may not be standard")
		} else {
			diags = append(diags, "Could not find header row with From, To, and Amount columns. Please ensure your CSV has these columns.")
			return nil, diags
		}
	}

	headers := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		headers[i] = strings.TrimSpace(h)
	}

	cols := schema.MapColumns(headers)

	if cols.From == -1 || cols.To == -1 {
		diags = append(diags, fmt.Sprintf("Missing required columns. Found headers: %s", strings.Join(headers, ", ")))
		return nil, diags
	}
	if cols.Amount == -1 {
		diags = append(diags, "Could not find Amount column in CSV")
		return nil, diags
	}

	minLen := maxIdx(cols.From, cols.To, cols.Amount) + 1

	var txns []model.Transaction
	skipped := 0

	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < minLen {
			skipped++
			continue
		}

		from := strings.TrimSpace(cell(row, cols.From))
		to := strings.TrimSpace(cell(row, cols.To))
		if from == "" && to == "" {
			skipped++
			continue
		}

		amount := normalize.ParseSignedAmount(cell(row, cols.Amount))
		if amount.IsZero() {
			skipped++
			continue
		}

		txns = append(txns, buildTransaction(row, cols, from, to, amount, sourceFileName, i))
	}

	if len(txns) == 0 && skipped > 0 {
		diags = append(diags, fmt.Sprintf("Parsed 0 transactions. %d rows were skipped (empty or invalid data).", skipped))
	}

	return txns, diags
}

func buildTransaction(row []string, cols schema.Columns, from, to string, amount decimal.Decimal, sourceFileName string, rowIdx int) model.Transaction {
	tx := model.Transaction{
		ID:         fmt.Sprintf("%s-%d", sourceFileName, rowIdx),
		Datetime:   time.Now(),
		Type:       defaultType,
		Status:     defaultStatus,
		From:       from,
		To:         to,
		Amount:     amount,
		SourceFile: sourceFileName,
	}

	if cols.Datetime >= 0 {
		tx.Datetime = normalize.ParseDate(cell(row, cols.Datetime))
	}
	if cols.Type >= 0 {
		if t := strings.TrimSpace(cell(row, cols.Type)); t != "" {
			tx.Type = t
		}
	}
	if cols.Status >= 0 {
		if s := strings.TrimSpace(cell(row, cols.Status)); s != "" {
			tx.Status = s
		}
	}
	if cols.Note >= 0 {
		tx.Note = strings.TrimSpace(cell(row, cols.Note))
	}
	if tx.From == "" {
		tx.From = model.UnknownParty
	}
	if tx.To == "" {
		tx.To = model.UnknownParty
	}

	tx.Tip = optionalAbs(row, cols.Tip)
	tx.Tax = optionalAbs(row, cols.Tax)
	tx.Fee = optionalAbs(row, cols.Fee)

	return tx
}

// optionalAbs parses a non-negative auxiliary amount, present only when the
// export actually carries the column.
func optionalAbs(row []string, idx int) *decimal.Decimal {
	if idx < 0 {
		return nil
	}
	v := normalize.ParseSignedAmount(cell(row, idx)).Abs()
	return &v
}

// readRows splits CSV text into rows, tolerating ragged field counts and
// collecting up to maxRowDiagnostics malformed-row messages without
// aborting the parse.
func readRows(csvText string) ([][]string, []string) {
	r := csv.NewReader(strings.NewReader(csvText))
	r.FieldsPerRecord = -1

	var rows [][]string
	var diags []string

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				if len(diags) < maxRowDiagnostics {
					diags = append(diags, fmt.Sprintf("Row %d: %v", pe.Line, pe.Err))
				}
				continue
			}
			if len(diags) < maxRowDiagnostics {
				diags = append(diags, fmt.Sprintf("Row %d: %v", len(rows)+1, err))
			}
			break
		}
		if isBlank(rec) {
			continue
		}
		rows = append(rows, rec)
	}

	return rows, diags
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func maxIdx(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
