// Package normalize parses raw CSV cell text into typed values: signed
// currency amounts in several notations and dates in several regional
// formats.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyJunk is stripped from amount text before numeric parsing:
// common currency symbols, thousands separators, spaces and parentheses.
const currencyJunk = "$€£¥₹₽, ()"

// ParseSignedAmount parses free-text money like "$1,234.56", "(100.00)",
// "100.00DR" or "€50". Parentheses and a DR suffix force a negative value,
// a CR suffix forces positive. Unparseable text yields zero, which callers
// treat as a skip signal.
func ParseSignedAmount(value string) decimal.Decimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero
	}

	// Accounting notation: "(100.00)" means -100.
	parenNegative := strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")")

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(currencyJunk, r) {
			return -1
		}
		return r
	}, trimmed)

	// Credit/debit suffix notation, case-insensitive.
	upper := strings.ToUpper(cleaned)
	isDebit := strings.HasSuffix(upper, "DR")
	isCredit := strings.HasSuffix(upper, "CR")
	if isDebit || isCredit {
		cleaned = cleaned[:len(cleaned)-2]
	}

	num, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	switch {
	case parenNegative, isDebit:
		return num.Abs().Neg()
	case isCredit:
		return num.Abs()
	default:
		return num
	}
}
