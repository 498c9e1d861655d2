// Package extract splits per-page document text into normalized, page-tagged
// content units, the paragraph-granularity elements the matcher compares
// across document versions.
package extract

import (
	"regexp"
	"unicode/utf8"

	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/normalize"
)

// paragraphBoundary matches one or more blank lines, including lines that
// contain only whitespace.
var paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

// Units extracts content units from the given pages, in page-ascending and
// then in-page document order. That order is load-bearing: downstream
// matching and display depend on it and it is preserved exactly.
//
// Each page is split into paragraph candidates on blank-line boundaries.
// Candidates whose normalized text is not longer (in runes) than
// cfg.MinMeaningfulTextLength are discarded; the rest are emitted with the
// normalized text, the 0-indexed page, and the original paragraph text.
func Units(textByPage []string, cfg model.Config) []model.ContentUnit {
	var units []model.ContentUnit

	for page, pageText := range textByPage {
		for _, paragraph := range paragraphBoundary.Split(pageText, -1) {
			normalized := normalize.Normalize(paragraph, cfg)
			if utf8.RuneCountInString(normalized) <= cfg.MinMeaningfulTextLength {
				continue
			}
			units = append(units, model.ContentUnit{
				Normalized: normalized,
				Page:       page,
				Original:   paragraph,
			})
		}
	}

	return units
}
