// Package locate maps a text string back to its rectangles on a page when
// exact lookup fails, by cascading through progressively fuzzier search
// strategies: the verbatim text, its paragraphs and sentences, fixed-size
// word chunks, and finally individual lines.
package locate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/redline/model"
)

// fuzzySentenceFloor is the minimum rune count for a sentence to be used as
// a source of fuzzy search chunks.
const fuzzySentenceFloor = 20

// Searcher is the page-bound search capability the resolver drives. Search
// returns the rectangles covering each occurrence of text on the page, and
// is assumed stateless and idempotent for identical queries within one run.
type Searcher interface {
	Search(text string) ([]model.BBox, error)
}

// Resolver locates text on pages under a validated configuration.
type Resolver struct {
	cfg model.Config
}

// New creates a Resolver, rejecting an invalid configuration.
func New(cfg model.Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg}, nil
}

// Locate resolves text to on-page rectangles. Each tier is attempted only if
// every previous tier produced zero rectangles:
//
//  1. the whole text, verbatim
//  2. each paragraph, falling back to its sentences, accumulating hits
//     across all of them
//  3. fixed-size word chunks of each long sentence (only when fuzzy is
//     enabled), again accumulating across all chunks
//  4. individual lines, stopping at the first line with a hit
//
// A nil error with no rectangles means the text could not be located; a
// search error aborts the cascade.
func (r *Resolver) Locate(page Searcher, text string, fuzzy bool) ([]model.BBox, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	tiers := []func() ([]model.BBox, error){
		func() ([]model.BBox, error) { return page.Search(text) },
		func() ([]model.BBox, error) { return r.paragraphTier(page, text) },
		func() ([]model.BBox, error) { return r.chunkTier(page, text, fuzzy) },
		func() ([]model.BBox, error) { return r.lineTier(page, text) },
	}

	for _, tier := range tiers {
		rects, err := tier()
		if err != nil {
			return nil, err
		}
		if len(rects) > 0 {
			return rects, nil
		}
	}
	return nil, nil
}

// paragraphTier searches each paragraph verbatim and, for paragraphs with no
// hits, each of their meaningful sentences. Hits are accumulated across all
// paragraphs and sentences; this tier never stops at the first hit.
func (r *Resolver) paragraphTier(page Searcher, text string) ([]model.BBox, error) {
	var rects []model.BBox

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		hits, err := page.Search(paragraph)
		if err != nil {
			return nil, err
		}
		if len(hits) > 0 {
			rects = append(rects, hits...)
			continue
		}

		for _, sentence := range splitSentences(paragraph) {
			sentence = strings.TrimSpace(sentence)
			if utf8.RuneCountInString(sentence) <= r.cfg.MinMeaningfulTextLength {
				continue
			}
			hits, err := page.Search(sentence)
			if err != nil {
				return nil, err
			}
			rects = append(rects, hits...)
		}
	}

	return rects, nil
}

// chunkTier re-splits the text into sentences and searches non-overlapping
// windows of FuzzyChunkSize consecutive words from each sentence longer than
// fuzzySentenceFloor runes. A trailing window shorter than the chunk size is
// dropped, never searched. All hits are accumulated.
func (r *Resolver) chunkTier(page Searcher, text string, fuzzy bool) ([]model.BBox, error) {
	if !fuzzy {
		return nil, nil
	}

	var rects []model.BBox
	size := r.cfg.FuzzyChunkSize

	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if utf8.RuneCountInString(sentence) <= fuzzySentenceFloor {
			continue
		}

		words := strings.Fields(sentence)
		for i := 0; i+size <= len(words); i += size {
			chunk := strings.Join(words[i:i+size], " ")
			if utf8.RuneCountInString(chunk) <= r.cfg.MinMeaningfulTextLength {
				continue
			}
			hits, err := page.Search(chunk)
			if err != nil {
				return nil, err
			}
			rects = append(rects, hits...)
		}
	}

	return rects, nil
}

// lineTier searches each meaningful line of the text and returns the hits of
// the first line that has any. Unlike the paragraph and chunk tiers this one
// deliberately short-circuits: lines after the first hit are never queried.
func (r *Resolver) lineTier(page Searcher, text string) ([]model.BBox, error) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= r.cfg.MinMeaningfulTextLength {
			continue
		}
		hits, err := page.Search(line)
		if err != nil {
			return nil, err
		}
		if len(hits) > 0 {
			return hits, nil
		}
	}
	return nil, nil
}

// splitSentences splits text after '.', '!' or '?' followed by whitespace.
// The terminator stays with its sentence; the separating whitespace is
// dropped.
func splitSentences(text string) []string {
	var (
		sentences []string
		start     int
	)

	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		r := runes[i]
		if (r != '.' && r != '!' && r != '?') || !unicode.IsSpace(runes[i+1]) {
			continue
		}

		sentences = append(sentences, string(runes[start:i+1]))
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}

	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}
