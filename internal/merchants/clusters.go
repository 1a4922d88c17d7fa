// Package merchants matches party names against a curated catalog of known
// commercial counterparties and category clusters. The catalog is static
// reference data, not user-editable.
package merchants

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/peerflow-dev/peerflow/internal/model"
)

// knownMerchants is the flat fragment list backing IsMerchant.
var knownMerchants = []string{
	"doordash", "uber", "lyft", "grubhub", "instacart", "amazon", "venmo",
	"paypal", "netflix", "spotify", "apple", "google", "microsoft", "walmart",
	"target", "costco", "starbucks", "mcdonalds", "chipotle", "panera",
	"dunkin", "dominos", "pizza hut", "taco bell", "wendys", "burger king",
	"subway", "chick-fil-a", "cvs", "walgreens", "rite aid", "7-eleven",
	"shell", "chevron", "exxon", "bp", "airbnb", "vrbo", "hotels.com",
	"expedia", "booking.com", "delta", "united", "american airlines",
	"southwest", "jetblue", "spirit", "frontier", "att", "verizon",
	"t-mobile", "sprint", "comcast", "xfinity", "spectrum", "cox", "hulu",
	"disney+", "hbo", "paramount+", "peacock", "youtube", "twitch",
	"patreon", "cash app", "zelle",
}

// Cluster is a named category of known merchants sharing recognizable
// lowercase name fragments.
type Cluster struct {
	Name      string
	Merchants []string
}

// Categories is the cluster catalog, in lookup precedence order.
var Categories = []Cluster{
	{Name: "Food Delivery", Merchants: []string{"doordash", "uber eats", "grubhub", "instacart", "postmates", "seamless"}},
	{Name: "Rideshare", Merchants: []string{"uber", "lyft", "bolt"}},
	{Name: "Restaurants", Merchants: []string{"starbucks", "mcdonalds", "chipotle", "panera", "dunkin", "dominos", "pizza hut", "taco bell", "wendys", "burger king", "subway", "chick-fil-a"}},
	{Name: "Streaming", Merchants: []string{"netflix", "spotify", "hulu", "disney+", "hbo", "paramount+", "peacock", "youtube", "twitch", "amazon prime"}},
	{Name: "E-Commerce", Merchants: []string{"amazon", "walmart", "target", "costco", "ebay", "etsy"}},
	{Name: "Payments", Merchants: []string{"venmo", "paypal", "cash app", "zelle", "square"}},
	{Name: "Pharmacy", Merchants: []string{"cvs", "walgreens", "rite aid"}},
	{Name: "Convenience", Merchants: []string{"7-eleven", "wawa", "sheetz", "circle k"}},
	{Name: "Gas Stations", Merchants: []string{"shell", "chevron", "exxon", "bp", "mobil", "sunoco"}},
	{Name: "Travel", Merchants: []string{"airbnb", "vrbo", "hotels.com", "expedia", "booking.com", "kayak", "priceline"}},
	{Name: "Airlines", Merchants: []string{"delta", "united", "american airlines", "southwest", "jetblue", "spirit", "frontier", "alaska airlines"}},
	{Name: "Telecom", Merchants: []string{"att", "verizon", "t-mobile", "sprint", "comcast", "xfinity", "spectrum", "cox"}},
	{Name: "Tech", Merchants: []string{"apple", "google", "microsoft", "adobe"}},
}

// matchesFragment implements the deliberately loose double-direction rule:
// the name contains the fragment, or (for names longer than 4 characters)
// the fragment contains the name's first 5 characters. Export data often
// truncates or suffixes merchant strings; the fixed 5-character prefix is
// load-bearing.
func matchesFragment(lowerName, fragment string) bool {
	if strings.Contains(lowerName, fragment) {
		return true
	}
	runes := []rune(lowerName)
	if len(runes) > 4 && strings.Contains(fragment, string(runes[:5])) {
		return true
	}
	return false
}

// IsMerchant reports whether a party name matches any known merchant.
func IsMerchant(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, m := range knownMerchants {
		if matchesFragment(lower, m) {
			return true
		}
	}
	return false
}

// FindCluster returns the first cluster in catalog order containing a
// fragment that matches the name, or nil. Ambiguous names silently take
// the first match.
func FindCluster(name string) *Cluster {
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)
	for i := range Categories {
		for _, m := range Categories[i].Merchants {
			if matchesFragment(lower, m) {
				return &Categories[i]
			}
		}
	}
	return nil
}

// ClusterName returns the matched cluster's name, or the name itself when
// no cluster matches.
func ClusterName(name string) string {
	if c := FindCluster(name); c != nil {
		return c.Name
	}
	return name
}

// Stat is an aggregate over the merchant side of a transaction set.
type Stat struct {
	Name             string
	Cluster          string
	TotalAmount      decimal.Decimal
	TransactionCount int
}

// Stats accumulates absolute totals and counts for every transaction party
// that matches a cluster, keyed per merchant name or (with byCluster) per
// cluster, sorted by total descending.
func Stats(txns []model.Transaction, byCluster bool) []Stat {
	idx := make(map[string]int)
	var stats []Stat

	add := func(key, cluster string, amount decimal.Decimal) {
		i, ok := idx[key]
		if !ok {
			i = len(stats)
			idx[key] = i
			stats = append(stats, Stat{Name: key, Cluster: cluster})
		}
		stats[i].TotalAmount = stats[i].TotalAmount.Add(amount)
		stats[i].TransactionCount++
	}

	for _, tx := range txns {
		abs := tx.Amount.Abs()
		if c := FindCluster(tx.From); c != nil {
			key := tx.From
			if byCluster {
				key = c.Name
			}
			add(key, c.Name, abs)
		}
		if c := FindCluster(tx.To); c != nil {
			key := tx.To
			if byCluster {
				key = c.Name
			}
			add(key, c.Name, abs)
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalAmount.GreaterThan(stats[j].TotalAmount)
	})
	return stats
}

// GroupByCluster buckets transactions by the from-side cluster, falling
// back to the to-side cluster and then to "Other".
func GroupByCluster(txns []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, tx := range txns {
		name := "Other"
		if c := FindCluster(tx.From); c != nil {
			name = c.Name
		} else if c := FindCluster(tx.To); c != nil {
			name = c.Name
		}
		groups[name] = append(groups[name], tx)
	}
	return groups
}
