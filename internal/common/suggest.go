// Package common holds small helpers shared by the loaders and the CLI.
package common

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
)

// Suggest returns the candidate closest to name by case-insensitive edit
// distance. Candidates further than a third of name's length (at least 2
// edits) are not considered.
func Suggest(name string, candidates []string) (string, bool) {
	limit := max(2, len(name)/3)
	best, bestDist := "", limit+1

	for _, c := range candidates {
		// nil params: MaxCost would yield a lower bound, not the distance.
		d := levenshtein.Distance(strings.ToLower(name), strings.ToLower(c), nil)
		if d <= limit && d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}

// Hint formats Suggest's result as an error-message suffix, or "" if there is
// no close candidate.
func Hint(name string, candidates []string) string {
	if s, ok := Suggest(name, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}

	return ""
}
