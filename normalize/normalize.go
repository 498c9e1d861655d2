// Package normalize canonicalizes extracted page text so that the same
// content can be recognized across document versions despite differences in
// whitespace, ligatures, punctuation variants and stray format characters.
//
// Normalization is pure and idempotent: applying it twice yields the same
// result as applying it once.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/tsawler/redline/model"
)

// substitutions is the fixed character substitution table applied in enhanced
// mode: ligature expansions, dash and quote unification, and ellipsis
// expansion. Extraction from typeset documents commonly produces these
// variants for content that is otherwise identical.
var substitutions = strings.NewReplacer(
	"ﬁ", "fi", "ﬂ", "fl", "ﬀ", "ff", "ﬃ", "ffi", "ﬄ", "ffl",
	"–", "-", "—", "-", "−", "-",
	"‘", "'", "’", "'", "“", `"`, "”", `"`,
	"…", "...",
)

// formatStripper removes zero-width and other Unicode format characters
// (category Cf) that text extraction leaves behind.
var formatStripper = runes.Remove(runes.In(unicode.Cf))

// minorPunctuation maps comma, semicolon, colon and quotes to spaces; the
// spaces are collapsed afterwards. Sentence-ending punctuation is kept so
// sentence structure survives for downstream locating.
var minorPunctuation = strings.NewReplacer(",", " ", ";", " ", ":", " ", `"`, " ", "'", " ")

// Normalize canonicalizes text for comparison.
//
// In basic mode (cfg.EnhancedPreprocessing false) it collapses whitespace
// runs to single spaces and trims the ends. In enhanced mode it additionally
// lowercases the text, applies the fixed substitution table, strips format
// characters and replaces minor punctuation with spaces.
func Normalize(text string, cfg model.Config) string {
	if !cfg.EnhancedPreprocessing {
		return collapseWhitespace(text)
	}

	text = strings.ToLower(text)
	text = substitutions.Replace(text)
	text, _, _ = transform.String(formatStripper, text)
	text = collapseWhitespace(text)
	text = minorPunctuation.Replace(text)
	return collapseWhitespace(text)
}

// collapseWhitespace reduces every whitespace run to a single space and
// trims leading and trailing whitespace.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
