package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one validated row from a payment CSV export.
// The sign of Amount encodes direction: negative = sent, positive = received.
// A Transaction is immutable after parsing.
type Transaction struct {
	ID         string           `json:"id"` // "{sourceFile}-{rowIndex}"
	Datetime   time.Time        `json:"datetime"`
	Type       string           `json:"type"`
	Status     string           `json:"status"`
	Note       string           `json:"note"`
	From       string           `json:"from"`
	To         string           `json:"to"`
	Amount     decimal.Decimal  `json:"amount"`
	Tip        *decimal.Decimal `json:"tip,omitempty"` // nil when the export has no tip column
	Tax        *decimal.Decimal `json:"tax,omitempty"`
	Fee        *decimal.Decimal `json:"fee,omitempty"`
	SourceFile string           `json:"sourceFile"`
}

// UnknownParty is the placeholder used when an export leaves a party blank.
const UnknownParty = "Unknown"

// UploadedFile tracks one ingested CSV in the session working set.
type UploadedFile struct {
	Name             string `json:"name"`
	Size             int64  `json:"size"`
	TransactionCount int    `json:"transactionCount"`
}

// AliasMapping is a user-authored equivalence class of party names.
// Canonical must never appear in Aliases.
type AliasMapping struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}
