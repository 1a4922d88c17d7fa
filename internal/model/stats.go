package model

import "github.com/shopspring/decimal"

// NameAmount pairs a party name with a money total.
type NameAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SummaryStats is the per-session summary derived from a filtered
// transaction set.
type SummaryStats struct {
	TotalSent         decimal.Decimal `json:"totalSent"`
	TotalReceived     decimal.Decimal `json:"totalReceived"`
	TotalTransactions int             `json:"totalTransactions"`
	UniquePeople      int             `json:"uniquePeople"`
	TopPayees         []NameAmount    `json:"topPayees"` // by received, descending
	TopPayers         []NameAmount    `json:"topPayers"` // by sent, descending
}
