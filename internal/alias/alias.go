// Package alias detects near-duplicate party names and resolves them to
// canonical identities. Suggestion grouping is greedy and order-dependent
// on purpose: names consumed by an earlier group never seed or join a later
// one, so two orderings of the same input can group differently when
// similarity is intransitive. That observable behavior is kept as-is.
package alias

import (
	"sort"
	"strings"

	"github.com/peerflow-dev/peerflow/internal/model"
)

// DefaultThreshold is the similarity bar used for suggestions when the
// caller has no configured preference.
const DefaultThreshold = 0.75

// Suggestion is a proposed merge of name variants believed to be the same
// person. Names is sorted; Suggested is the proposed canonical display name.
type Suggestion struct {
	Names     []string
	Suggested string
}

// Normalize prepares a name for matching: lowercase, trimmed, internal
// whitespace collapsed to single spaces.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// FindSimilarNames clusters people whose names look alike. For each name
// not yet consumed, every later unconsumed name joins its group when the
// normalizations match exactly, or when they compare similar under the
// token-wise / whole-string rules at the given threshold. Groups with a
// single member are not reported.
func FindSimilarNames(people []string, threshold float64) []Suggestion {
	var groups []Suggestion
	used := make(map[string]bool)

	for i := 0; i < len(people); i++ {
		if used[people[i]] {
			continue
		}

		similar := []string{people[i]}
		norm1 := Normalize(people[i])

		for j := i + 1; j < len(people); j++ {
			if used[people[j]] {
				continue
			}
			norm2 := Normalize(people[j])
			if norm1 == norm2 || areSimilar(norm1, norm2, threshold) {
				similar = append(similar, people[j])
				used[people[j]] = true
			}
		}

		if len(similar) > 1 {
			used[people[i]] = true
			sort.Strings(similar)
			groups = append(groups, Suggestion{
				Names:     similar,
				Suggested: selectCanonical(similar),
			})
		}
	}

	return groups
}

// areSimilar compares two normalized names. When both split into the same
// number of tokens, every token pair must match exactly or exceed the
// threshold; otherwise the whole strings must reach the threshold.
func areSimilar(a, b string, threshold float64) bool {
	if a == b {
		return true
	}

	aParts := strings.Fields(a)
	bParts := strings.Fields(b)

	if len(aParts) == len(bParts) {
		matches := 0
		for i := range aParts {
			if aParts[i] == bParts[i] || Similarity(aParts[i], bParts[i]) > threshold {
				matches++
			}
		}
		if matches == len(aParts) {
			return true
		}
	}

	return Similarity(a, b) >= threshold
}

// Similarity is normalized edit distance: 1 - lev(a,b)/max(len(a),len(b)).
// Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		if len(br) == 0 {
			return 1
		}
		return 0
	}
	if len(br) == 0 {
		return 0
	}

	dist := levenshtein(ar, br)
	maxLen := len(ar)
	if len(br) > maxLen {
		maxLen = len(br)
	}
	return 1 - float64(dist)/float64(maxLen)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// selectCanonical picks the display name for a group: proper case (both an
// uppercase and a lowercase letter) beats improper case, then the longer
// name wins, ties keeping the earlier candidate.
func selectCanonical(names []string) string {
	best := names[0]
	for _, name := range names[1:] {
		bestProper := hasProperCase(best)
		nameProper := hasProperCase(name)

		switch {
		case nameProper && !bestProper:
			best = name
		case !nameProper && bestProper:
			// keep best
		case len(name) > len(best):
			best = name
		}
	}
	return best
}

func hasProperCase(s string) bool {
	return strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
		strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz")
}

// Map is the flattened name-to-canonical lookup table.
type Map map[string]string

// BuildMap flattens mappings into a single lookup. Every alias maps to its
// canonical name and each canonical maps to itself, so Apply is idempotent.
// When two mappings claim the same source name, the later mapping wins.
func BuildMap(mappings []model.AliasMapping) Map {
	m := make(Map)
	for _, mapping := range mappings {
		for _, a := range mapping.Aliases {
			m[a] = mapping.Canonical
		}
		m[mapping.Canonical] = mapping.Canonical
	}
	return m
}

// Apply resolves a name through the lookup, returning it unchanged when
// absent. A nil Map is a valid no-op lookup.
func (m Map) Apply(name string) string {
	if canonical, ok := m[name]; ok {
		return canonical
	}
	return name
}

// CoveredNames returns the set of names already claimed by a mapping,
// either as canonical or as alias. Suggestion callers exclude these from
// the candidate pool.
func CoveredNames(mappings []model.AliasMapping) map[string]bool {
	covered := make(map[string]bool)
	for _, mapping := range mappings {
		covered[mapping.Canonical] = true
		for _, a := range mapping.Aliases {
			covered[a] = true
		}
	}
	return covered
}
