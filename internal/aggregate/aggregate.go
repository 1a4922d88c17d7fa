// Package aggregate computes the derived views over a transaction set:
// pairwise money flows with sentiment, the people list, the sankey graph
// and summary statistics. Every function is a pure computation; callers
// re-derive all views together after any upstream change so no view lags
// another.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peerflow-dev/peerflow/internal/alias"
	"github.com/peerflow-dev/peerflow/internal/merchants"
	"github.com/peerflow-dev/peerflow/internal/model"
)

// topListSize caps the payer/payee leaderboards.
const topListSize = 10

// Options selects and relabels the transactions an aggregation sees.
// A zero Start or End leaves that side of the date range unbounded; End is
// extended to the end of its day. A nil Aliases map is a no-op lookup.
type Options struct {
	HideMerchants bool
	Aliases       alias.Map
	Start         time.Time
	End           time.Time
}

// View bundles the derived structures recomputed together from one
// filtered transaction set.
type View struct {
	Transactions []model.Transaction
	Flows        []model.Flow
	People       []string
	Graph        model.SankeyGraph
	Stats        model.SummaryStats
}

// Compute derives all views consistently from the same filtered set.
func Compute(txns []model.Transaction, opts Options) View {
	filtered := Filter(txns, opts)
	flows := flowsOf(filtered, opts.Aliases)
	people := peopleOf(filtered, opts.Aliases)
	return View{
		Transactions: filtered,
		Flows:        flows,
		People:       people,
		Graph:        Sankey(flows, people),
		Stats:        statsOf(filtered, opts.Aliases),
	}
}

// Filter applies the merchant and date filters. Merchant matching runs on
// the raw party names, before any alias substitution.
func Filter(txns []model.Transaction, opts Options) []model.Transaction {
	end := opts.End
	if !end.IsZero() {
		end = endOfDay(end)
	}

	var out []model.Transaction
	for _, tx := range txns {
		if opts.HideMerchants && (merchants.IsMerchant(tx.From) || merchants.IsMerchant(tx.To)) {
			continue
		}
		if !opts.Start.IsZero() && tx.Datetime.Before(opts.Start) {
			continue
		}
		if !end.IsZero() && tx.Datetime.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Flows aggregates pairwise money totals over the filtered set.
func Flows(txns []model.Transaction, opts Options) []model.Flow {
	return flowsOf(Filter(txns, opts), opts.Aliases)
}

type pairKey struct {
	source, target string
}

// flowsOf accumulates per ordered (source, target) pair in first-encounter
// order, which keeps output deterministic across calls. Signed sums per
// pair decide sentiment; a tie counts as positive.
func flowsOf(txns []model.Transaction, lookup alias.Map) []model.Flow {
	type acc struct {
		value decimal.Decimal
		pos   decimal.Decimal
		neg   decimal.Decimal
	}

	idx := make(map[pairKey]int)
	var order []pairKey
	var accs []acc

	for _, tx := range txns {
		source := lookup.Apply(tx.From)
		target := lookup.Apply(tx.To)
		if source == "" || target == "" || source == target {
			continue
		}

		abs := tx.Amount.Abs()
		if abs.IsZero() {
			continue
		}

		key := pairKey{source, target}
		i, ok := idx[key]
		if !ok {
			i = len(accs)
			idx[key] = i
			order = append(order, key)
			accs = append(accs, acc{})
		}
		accs[i].value = accs[i].value.Add(abs)
		if tx.Amount.IsPositive() {
			accs[i].pos = accs[i].pos.Add(abs)
		} else {
			accs[i].neg = accs[i].neg.Add(abs)
		}
	}

	flows := make([]model.Flow, 0, len(order))
	for i, key := range order {
		if !accs[i].value.IsPositive() {
			continue
		}
		sentiment := model.SentimentPositive
		if accs[i].pos.LessThan(accs[i].neg) {
			sentiment = model.SentimentNegative
		}
		flows = append(flows, model.Flow{
			Source:    key.source,
			Target:    key.target,
			Value:     accs[i].value,
			Sentiment: sentiment,
		})
	}
	return flows
}

// People returns the sorted set of alias-substituted party names over the
// filtered set, excluding the Unknown placeholder.
func People(txns []model.Transaction, opts Options) []string {
	return peopleOf(Filter(txns, opts), opts.Aliases)
}

// OriginalPeople returns the pre-alias people list over the same filtered
// set; the identity resolver draws its suggestion candidates from it.
func OriginalPeople(txns []model.Transaction, opts Options) []string {
	return peopleOf(Filter(txns, opts), nil)
}

func peopleOf(txns []model.Transaction, lookup alias.Map) []string {
	seen := make(map[string]bool)
	var people []string
	add := func(name string) {
		if name == "" || name == model.UnknownParty || seen[name] {
			return
		}
		seen[name] = true
		people = append(people, name)
	}
	for _, tx := range txns {
		add(lookup.Apply(tx.From))
		add(lookup.Apply(tx.To))
	}
	sort.Strings(people)
	return people
}

// Sankey builds the node/link handoff structure for the visualization
// layer. A link is emitted only when both endpoints exist in the people
// index, source differs from target, and the value is positive.
func Sankey(flows []model.Flow, people []string) model.SankeyGraph {
	if len(flows) == 0 || len(people) == 0 {
		return model.SankeyGraph{}
	}

	index := make(map[string]int, len(people))
	nodes := make([]model.SankeyNode, len(people))
	for i, name := range people {
		index[name] = i
		nodes[i] = model.SankeyNode{Name: name}
	}

	var links []model.SankeyLink
	for _, f := range flows {
		src, okSrc := index[f.Source]
		tgt, okTgt := index[f.Target]
		if !okSrc || !okTgt || f.Source == f.Target || !f.Value.IsPositive() {
			continue
		}
		links = append(links, model.SankeyLink{
			Source:    src,
			Target:    tgt,
			Value:     f.Value,
			Sentiment: f.Sentiment,
		})
	}

	return model.SankeyGraph{Nodes: nodes, Links: links}
}

// Stats computes the summary over the filtered set.
func Stats(txns []model.Transaction, opts Options) model.SummaryStats {
	return statsOf(Filter(txns, opts), opts.Aliases)
}

// personTotals accumulates per-name totals in first-encounter order so
// leaderboard ties break on input order under the stable sort.
type personTotals struct {
	idx   map[string]int
	names []string
	sums  []decimal.Decimal
}

func newPersonTotals() *personTotals {
	return &personTotals{idx: make(map[string]int)}
}

func (p *personTotals) add(name string, amount decimal.Decimal) {
	i, ok := p.idx[name]
	if !ok {
		i = len(p.names)
		p.idx[name] = i
		p.names = append(p.names, name)
		p.sums = append(p.sums, decimal.Zero)
	}
	p.sums[i] = p.sums[i].Add(amount)
}

func (p *personTotals) top(n int) []model.NameAmount {
	out := make([]model.NameAmount, len(p.names))
	for i, name := range p.names {
		out[i] = model.NameAmount{Name: name, Amount: p.sums[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func statsOf(txns []model.Transaction, lookup alias.Map) model.SummaryStats {
	sent := newPersonTotals()
	received := newPersonTotals()

	totalSent := decimal.Zero
	totalReceived := decimal.Zero

	for _, tx := range txns {
		abs := tx.Amount.Abs()
		if tx.Amount.IsNegative() {
			totalSent = totalSent.Add(abs)
		} else if tx.Amount.IsPositive() {
			totalReceived = totalReceived.Add(abs)
		}
		sent.add(lookup.Apply(tx.From), abs)
		received.add(lookup.Apply(tx.To), abs)
	}

	// Some exports carry only absolute magnitudes, leaving both signed
	// totals at zero. Fall back to counting every magnitude as both sent
	// and received in the aggregate totals (the per-person breakdown is
	// untouched) so the summary is not misleadingly empty.
	if totalSent.IsZero() && totalReceived.IsZero() && len(txns) > 0 {
		for _, tx := range txns {
			totalSent = totalSent.Add(tx.Amount.Abs())
		}
		totalReceived = totalSent
	}

	return model.SummaryStats{
		TotalSent:         totalSent,
		TotalReceived:     totalReceived,
		TotalTransactions: len(txns),
		UniquePeople:      len(peopleOf(txns, lookup)),
		TopPayees:         received.top(topListSize),
		TopPayers:         sent.top(topListSize),
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
