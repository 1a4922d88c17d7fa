package model

import "github.com/shopspring/decimal"

// Sentiment labels whether the aggregate direction between a pair of
// parties is dominated by receipts or by payments.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Flow is the aggregated money total for one ordered (source, target)
// pair over a filtered transaction set. Value is always positive.
type Flow struct {
	Source    string          `json:"source"`
	Target    string          `json:"target"`
	Value     decimal.Decimal `json:"value"`
	Sentiment Sentiment       `json:"sentiment"`
}

// SankeyNode is one party in the flow graph.
type SankeyNode struct {
	Name string `json:"name"`
}

// SankeyLink references nodes by their position in SankeyGraph.Nodes.
type SankeyLink struct {
	Source    int             `json:"source"`
	Target    int             `json:"target"`
	Value     decimal.Decimal `json:"value"`
	Sentiment Sentiment       `json:"sentiment"`
}

// SankeyGraph is the node/link structure handed to the visualization layer.
type SankeyGraph struct {
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}
