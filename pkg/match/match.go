// Package match provides partial and fuzzy string matchers for the view
// engine's search stage. A matcher receives the query and the string forms of
// a record's searchable column values, and decides whether the record stays.
package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultFuzzyThreshold is the minimum similarity ratio Fuzzy accepts.
const DefaultFuzzyThreshold = 0.75

// Substring reports whether the query is a case-insensitive substring of any
// candidate. A blank query matches everything.
func Substring(query string, candidates []string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// Fuzzy matches by substring first, then by Levenshtein similarity against
// each candidate and its whitespace-separated words, using
// DefaultFuzzyThreshold.
func Fuzzy(query string, candidates []string) bool {
	return fuzzy(query, candidates, DefaultFuzzyThreshold)
}

// FuzzyWithThreshold returns a Fuzzy variant with a custom similarity
// threshold in (0, 1].
func FuzzyWithThreshold(threshold float64) func(query string, candidates []string) bool {
	return func(query string, candidates []string) bool {
		return fuzzy(query, candidates, threshold)
	}
}

func fuzzy(query string, candidates []string, threshold float64) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(lc, q) {
			return true
		}
		if similarity(q, lc) >= threshold {
			return true
		}
		for _, word := range strings.Fields(lc) {
			if similarity(q, word) >= threshold {
				return true
			}
		}
	}
	return false
}

// similarity converts a Levenshtein distance into a 0..1 ratio over the
// longer string.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
