package merchants

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerflow-dev/peerflow/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func tx(from, to, amount string) model.Transaction {
	return model.Transaction{From: from, To: to, Amount: dec(amount)}
}

func TestIsMerchant(t *testing.T) {
	assert.True(t, IsMerchant("DoorDash"))
	assert.True(t, IsMerchant("Uber Technologies"))
	assert.True(t, IsMerchant("PAYPAL *TRANSFER"), "fragment anywhere in the name")
	assert.False(t, IsMerchant("Alice Johnson"))
	assert.False(t, IsMerchant(""))
}

func TestIsMerchantPrefixRule(t *testing.T) {
	// "Starbu" is longer than 4 chars and its first 5 characters appear
	// inside the catalog fragment "starbucks".
	assert.True(t, IsMerchant("Starbu"))
	// Short names never trigger the reverse containment.
	assert.False(t, IsMerchant("Star"))
}

func TestFindClusterFirstMatchWins(t *testing.T) {
	// "uber eats" is a Food Delivery fragment and Food Delivery is
	// declared before Rideshare, so Uber Eats lands there.
	c := FindCluster("Uber Eats Order")
	require.NotNil(t, c)
	assert.Equal(t, "Food Delivery", c.Name)

	c = FindCluster("Lyft")
	require.NotNil(t, c)
	assert.Equal(t, "Rideshare", c.Name)

	assert.Nil(t, FindCluster("Alice Johnson"))
	assert.Nil(t, FindCluster(""))
}

func TestClusterName(t *testing.T) {
	assert.Equal(t, "Streaming", ClusterName("Netflix"))
	assert.Equal(t, "Alice", ClusterName("Alice"))
}

func TestStatsPerMerchant(t *testing.T) {
	txns := []model.Transaction{
		tx("Alice", "DoorDash", "-20.00"),
		tx("Alice", "DoorDash", "-30.00"),
		tx("Alice", "Netflix", "-15.00"),
	}
	stats := Stats(txns, false)
	require.Len(t, stats, 2)
	assert.Equal(t, "DoorDash", stats[0].Name)
	assert.Equal(t, "Food Delivery", stats[0].Cluster)
	assert.True(t, dec("50.00").Equal(stats[0].TotalAmount))
	assert.Equal(t, 2, stats[0].TransactionCount)
	assert.Equal(t, "Netflix", stats[1].Name)
}

func TestStatsByCluster(t *testing.T) {
	txns := []model.Transaction{
		tx("Alice", "DoorDash", "-20.00"),
		tx("Alice", "Grubhub", "-25.00"),
	}
	stats := Stats(txns, true)
	require.Len(t, stats, 1)
	assert.Equal(t, "Food Delivery", stats[0].Name)
	assert.True(t, dec("45.00").Equal(stats[0].TotalAmount))
	assert.Equal(t, 2, stats[0].TransactionCount)
}

func TestGroupByCluster(t *testing.T) {
	txns := []model.Transaction{
		tx("DoorDash", "Alice", "-20.00"),
		tx("Alice", "Netflix", "-15.00"),
		tx("Alice", "Bob", "10.00"),
	}
	groups := GroupByCluster(txns)
	assert.Len(t, groups["Food Delivery"], 1)
	assert.Len(t, groups["Streaming"], 1)
	assert.Len(t, groups["Other"], 1)
}
