package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseSignedAmount(t *testing.T) {
	tests := []struct {
		in   string
		want decimal.Decimal
	}{
		{"100.00", dec("100.00")},
		{"-100.00", dec("-100.00")},
		{"(100.00)", dec("-100.00")},
		{"100.00DR", dec("-100.00")},
		{"100.00dr", dec("-100.00")},
		{"100.00CR", dec("100.00")},
		{"-100.00CR", dec("100.00")}, // CR forces positive magnitude
		{"$1,234.56", dec("1234.56")},
		{"€ 50", dec("50")},
		{"£9.99", dec("9.99")},
		{"₹2,000", dec("2000")},
		{"($ 12.00)", dec("-12.00")},
		{"+15.25", dec("15.25")},
	}
	for _, tt := range tests {
		got := ParseSignedAmount(tt.in)
		assert.True(t, tt.want.Equal(got), "%q: want %s, got %s", tt.in, tt.want, got)
	}
}

func TestParseSignedAmountUnparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "$", "CR", "12.3.4"} {
		assert.True(t, ParseSignedAmount(in).IsZero(), "%q should parse to zero", in)
	}
}
