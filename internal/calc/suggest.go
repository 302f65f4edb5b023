package calc

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known name.
const maxSuggestDistance = 3

// Suggest returns the candidate closest to name, or "" when nothing is close.
func Suggest(name string, candidates []string) string {
	name = strings.ToLower(name)
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func unknownf(sentinel error, name string, candidates []string) error {
	if s := Suggest(name, candidates); s != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", sentinel, name, s)
	}
	return fmt.Errorf("%w: %q (available: %s)", sentinel, name, strings.Join(candidates, ", "))
}
