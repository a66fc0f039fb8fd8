package interpret

import (
	"context"
	"strings"

	"github.com/ppiankov/contextboard/internal/catalog"
	"github.com/ppiankov/contextboard/internal/model"
)

const (
	// DefaultThreshold is the minimum confidence for a catalog match
	DefaultThreshold = 0.7

	exactConfidence    = 1.0
	containsConfidence = 0.9
)

// Matcher fuzzy-matches phrases against the promotion catalog.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	entries   []indexedEntry
	threshold float64
}

// indexedEntry pairs a mapping with its normalized patterns
type indexedEntry struct {
	mapping  model.PromotionMapping
	patterns []string
}

// NewMatcher creates a matcher. A non-positive threshold uses DefaultThreshold.
func NewMatcher(c *catalog.Catalog, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	entries := make([]indexedEntry, 0, c.Len())
	for _, e := range c.Entries() {
		patterns := make([]string, 0, len(e.Patterns))
		for _, p := range e.Patterns {
			if n := Normalize(p); n != "" {
				patterns = append(patterns, n)
			}
		}
		entries = append(entries, indexedEntry{mapping: e, patterns: patterns})
	}

	return &Matcher{entries: entries, threshold: threshold}
}

// Name identifies the tier in logs
func (m *Matcher) Name() string {
	return string(model.SourceLibrary)
}

// Interpret satisfies Interpreter
func (m *Matcher) Interpret(_ context.Context, phrase string) *model.SemanticInterpretation {
	return m.Match(phrase)
}

// Match returns the best catalog interpretation, or nil below the threshold
func (m *Matcher) Match(phrase string) *model.SemanticInterpretation {
	entry, confidence, ok := m.Best(phrase)
	if !ok || confidence < m.threshold {
		return nil
	}

	concepts := make([]model.Concept, len(entry.Concepts))
	copy(concepts, entry.Concepts)

	return &model.SemanticInterpretation{
		Intent:     model.IntentPurchase,
		Concepts:   concepts,
		Source:     model.SourceLibrary,
		Confidence: confidence,
	}
}

// Best returns the highest scoring entry regardless of threshold.
// Ties keep the earliest entry in catalog order.
func (m *Matcher) Best(phrase string) (model.PromotionMapping, float64, bool) {
	normalized := Normalize(phrase)
	if normalized == "" {
		return model.PromotionMapping{}, 0, false
	}

	var (
		best      model.PromotionMapping
		bestScore float64
		found     bool
	)

	for _, entry := range m.entries {
		for _, pattern := range entry.patterns {
			score := Score(normalized, pattern)
			if !found || score > bestScore {
				best, bestScore, found = entry.mapping, score, true
			}
			if bestScore == exactConfidence {
				return best, bestScore, true
			}
		}
	}

	return best, bestScore, found
}

// Score rates a normalized phrase against one pattern
func Score(phrase, pattern string) float64 {
	switch {
	case phrase == pattern:
		return exactConfidence
	case pattern != "" && (strings.Contains(phrase, pattern) || strings.Contains(pattern, phrase)):
		return containsConfidence
	default:
		return Similarity(phrase, pattern)
	}
}

// Similarity is the normalized Levenshtein similarity in [0,1]
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// levenshtein computes the edit distance over runes using two rows
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
