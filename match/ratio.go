package match

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio computes the character-level similarity between two strings as a
// sequence-alignment ratio in [0, 1]. Identical strings score 1.0 and
// strings with no characters in common score 0. The measure is symmetric up
// to the matcher's popular-element heuristic on long inputs.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// chars splits s into per-rune elements so the sequence matcher aligns
// characters rather than lines.
func chars(s string) []string {
	return strings.Split(s, "")
}
