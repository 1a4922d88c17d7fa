package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "amounttotal", NormalizeHeader("Amount (Total)"))
	assert.Equal(t, "from", NormalizeHeader("  From  "))
	assert.Equal(t, "paidby", NormalizeHeader("Paid By"))
	assert.Equal(t, "", NormalizeHeader("---"))
}

func TestFindColumnExactBeatsSubstring(t *testing.T) {
	// "Amount" matches exactly even though "Amount (fee)" contains it
	// at a lower index.
	headers := []string{"Amount (fee)", "Amount"}
	assert.Equal(t, 1, FindColumn(headers, FieldAmount))
}

func TestFindColumnPriorityOrder(t *testing.T) {
	// "amounttotal" outranks "amount" in the alias list, so the exact
	// "Amount (Total)" column wins over a plain "Amount" one.
	headers := []string{"Amount", "Amount (Total)"}
	assert.Equal(t, 1, FindColumn(headers, FieldAmount))
}

func TestFindColumnSubstringFallback(t *testing.T) {
	headers := []string{"Transaction Date & Time", "Sender Name", "Recipient Name", "Total USD"}
	assert.Equal(t, 0, FindColumn(headers, FieldDatetime))
	assert.Equal(t, 1, FindColumn(headers, FieldFrom))
	assert.Equal(t, 2, FindColumn(headers, FieldTo))
}

func TestFindColumnUnmapped(t *testing.T) {
	headers := []string{"alpha", "beta"}
	assert.Equal(t, -1, FindColumn(headers, FieldTip))
}

func TestIsHeaderRow(t *testing.T) {
	assert.True(t, IsHeaderRow([]string{"From", "To", "Amount"}))
	assert.True(t, IsHeaderRow([]string{"Sent From", "Paid To", "Total"}))
	assert.False(t, IsHeaderRow([]string{"From", "To"}), "needs at least 3 cells")
	assert.False(t, IsHeaderRow([]string{"a", "b", "c"}))
}

func TestFindHeaderRowScansFirst15(t *testing.T) {
	var rows [][]string
	for i := 0; i < 16; i++ {
		rows = append(rows, []string{"x", "y", "z"})
	}
	rows = append(rows, []string{"From", "To", "Amount"})
	assert.Equal(t, -1, FindHeaderRow(rows), "header beyond row 15 is not found")

	rows[3] = []string{"From", "To", "Amount"}
	assert.Equal(t, 3, FindHeaderRow(rows))
}

func TestMapColumns(t *testing.T) {
	cols := MapColumns([]string{"ID", "Datetime", "Type", "Status", "Note", "From", "To", "Amount (total)", "Tip", "Tax", "Fee"})
	assert.Equal(t, 0, cols.ID)
	assert.Equal(t, 1, cols.Datetime)
	assert.Equal(t, 5, cols.From)
	assert.Equal(t, 6, cols.To)
	assert.Equal(t, 7, cols.Amount)
	assert.Equal(t, 8, cols.Tip)
	assert.Equal(t, 10, cols.Fee)
}
