// Package schema infers which CSV column corresponds to each semantic
// transaction field from arbitrary, unlabeled export headers.
package schema

import "strings"

// Field is a semantic transaction field a CSV column can map to.
type Field string

const (
	FieldID       Field = "id"
	FieldDatetime Field = "datetime"
	FieldType     Field = "type"
	FieldStatus   Field = "status"
	FieldNote     Field = "note"
	FieldFrom     Field = "from"
	FieldTo       Field = "to"
	FieldAmount   Field = "amount"
	FieldTip      Field = "tip"
	FieldTax      Field = "tax"
	FieldFee      Field = "fee"
)

// headerAliases lists accepted header names per field, in priority order.
// Comparison happens on normalized text, so entries may contain spaces.
var headerAliases = map[Field][]string{
	FieldID:       {"id", "transactionid", "txid", "transid", "referenceid", "ref", "transactionref"},
	FieldDatetime: {"datetime", "date", "timestamp", "createdat", "time", "transactiondate", "paymentdate", "processeddate", "completeddate"},
	FieldType:     {"type", "transactiontype", "paymenttype", "category", "txtype"},
	FieldStatus:   {"status", "state", "paymentstatus", "txstatus"},
	FieldNote:     {"note", "description", "memo", "message", "comment", "details", "purpose", "reason"},
	FieldFrom:     {"from", "sender", "fromuser", "payer", "source", "debitfrom", "paid by", "sentby", "origin", "fromname", "sendername", "payername"},
	FieldTo:       {"to", "recipient", "touser", "payee", "destination", "creditto", "paid to", "sentto", "receiver", "toname", "recipientname", "payeename", "beneficiary"},
	FieldAmount:   {"amounttotal", "amount", "total", "amountusd", "value", "sum", "payment", "transactionamount", "netamount", "grossamount", "price", "cost", "debit", "credit"},
	FieldTip:      {"tip", "tipamount", "gratuity"},
	FieldTax:      {"tax", "taxamount", "salestax", "vat"},
	FieldFee:      {"fee", "feeamount", "servicefee", "transactionfee", "processingfee"},
}

// maxHeaderScanRows is how deep into a file the header row is searched for.
const maxHeaderScanRows = 15

// NormalizeHeader lowercases a header cell and strips everything that is
// not a letter or digit, so "Amount (Total)" and "amounttotal" compare equal.
func NormalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindColumn returns the index of the header matching field, or -1.
// Exact normalized matches are tried across all aliases first, then
// substring containment, both in alias priority order.
func FindColumn(headers []string, field Field) int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	aliases, ok := headerAliases[field]
	if !ok {
		aliases = []string{string(field)}
	}

	for _, alias := range aliases {
		want := NormalizeHeader(alias)
		for i, h := range normalized {
			if h == want {
				return i
			}
		}
	}

	for _, alias := range aliases {
		want := NormalizeHeader(alias)
		for i, h := range normalized {
			if strings.Contains(h, want) {
				return i
			}
		}
	}

	return -1
}

// IsHeaderRow reports whether a row looks like an export header: at least
// 3 cells, with a cell matching "from", one matching "to" and one matching
// "amount" (or exactly "total") by normalized substring.
func IsHeaderRow(row []string) bool {
	if len(row) < 3 {
		return false
	}

	var hasFrom, hasTo, hasAmount bool
	for _, cell := range row {
		c := NormalizeHeader(cell)
		if strings.Contains(c, "from") {
			hasFrom = true
		}
		if strings.Contains(c, "to") {
			hasTo = true
		}
		if strings.Contains(c, "amount") || c == "total" {
			hasAmount = true
		}
	}
	return hasFrom && hasTo && hasAmount
}

// FindHeaderRow scans at most the first 15 rows for a header row and
// returns its index, or -1 if none qualifies.
func FindHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > maxHeaderScanRows {
		limit = maxHeaderScanRows
	}
	for i := 0; i < limit; i++ {
		if IsHeaderRow(rows[i]) {
			return i
		}
	}
	return -1
}

// Columns holds the inferred column index per semantic field (-1 = unmapped).
type Columns struct {
	ID       int
	Datetime int
	Type     int
	Status   int
	Note     int
	From     int
	To       int
	Amount   int
	Tip      int
	Tax      int
	Fee      int
}

// MapColumns infers every semantic field's column index from a header row.
func MapColumns(headers []string) Columns {
	return Columns{
		ID:       FindColumn(headers, FieldID),
		Datetime: FindColumn(headers, FieldDatetime),
		Type:     FindColumn(headers, FieldType),
		Status:   FindColumn(headers, FieldStatus),
		Note:     FindColumn(headers, FieldNote),
		From:     FindColumn(headers, FieldFrom),
		To:       FindColumn(headers, FieldTo),
		Amount:   FindColumn(headers, FieldAmount),
		Tip:      FindColumn(headers, FieldTip),
		Tax:      FindColumn(headers, FieldTax),
		Fee:      FindColumn(headers, FieldFee),
	}
}
