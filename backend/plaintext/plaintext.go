// Package plaintext implements the backend contracts over plain-text files.
//
// Pages are separated by form feed characters ('\f'). Geometry is
// synthesized from a fixed character grid: every line occupies a constant
// height and every rune a constant width, so search results are
// deterministic and highlight rectangles can be rendered onto a blank page
// image. Highlights are recorded in memory and can be read back after a run.
package plaintext

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/redline/backend"
	"github.com/tsawler/redline/model"
)

// Grid metrics, in page units.
const (
	CharWidth  = 7.2
	LineHeight = 14.0
)

// Highlight is one recorded highlight call.
type Highlight struct {
	Page    int
	Rect    model.BBox
	Tag     model.HighlightTag
	Opacity float64
}

// Document is an open plain-text document.
type Document struct {
	pages      []string
	highlights []Highlight
}

// Backend opens plain-text documents from the filesystem.
type Backend struct{}

// New creates a plain-text backend.
func New() Backend {
	return Backend{}
}

// Open reads a text file and splits it into pages on form feeds.
func (Backend) Open(path string) (backend.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open text document: %w", err)
	}
	return FromString(string(data)), nil
}

// FromString builds an in-memory document from raw text with form-feed page
// breaks. A document always has at least one page.
func FromString(text string) *Document {
	return &Document{pages: strings.Split(text, "\f")}
}

// PageCount reports the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Text returns the raw text of the 0-indexed page.
func (d *Document) Text(page int) (string, error) {
	if page < 0 || page >= len(d.pages) {
		return "", fmt.Errorf("page %d out of range [0, %d)", page, len(d.pages))
	}
	return d.pages[page], nil
}

// Search finds literal occurrences of text within single lines of the page
// and synthesizes one rectangle per occurrence from the character grid.
// Queries spanning multiple lines yield no hits; the caller's fallback
// strategies handle those.
func (d *Document) Search(page int, text string) ([]model.BBox, error) {
	if page < 0 || page >= len(d.pages) {
		return nil, fmt.Errorf("page %d out of range [0, %d)", page, len(d.pages))
	}

	query := strings.TrimSpace(text)
	if query == "" || strings.Contains(query, "\n") {
		return nil, nil
	}

	var rects []model.BBox
	queryRunes := utf8.RuneCountInString(query)

	for lineNo, line := range strings.Split(d.pages[page], "\n") {
		rest := line
		col := 0 // rune offset of rest within line
		for {
			idx := strings.Index(rest, query)
			if idx < 0 {
				break
			}
			start := col + utf8.RuneCountInString(rest[:idx])
			rects = append(rects, model.BBox{
				X:      float64(start) * CharWidth,
				Y:      float64(lineNo) * LineHeight,
				Width:  float64(queryRunes) * CharWidth,
				Height: LineHeight,
			})
			col = start + queryRunes
			rest = rest[idx+len(query):]
		}
	}

	return rects, nil
}

// Highlight records a highlight call for later retrieval or rendering.
func (d *Document) Highlight(page int, rect model.BBox, tag model.HighlightTag, opacity float64) error {
	if page < 0 || page >= len(d.pages) {
		return fmt.Errorf("page %d out of range [0, %d)", page, len(d.pages))
	}
	if opacity < 0 || opacity > 1 {
		return fmt.Errorf("opacity %g out of range [0, 1]", opacity)
	}
	d.highlights = append(d.highlights, Highlight{Page: page, Rect: rect, Tag: tag, Opacity: opacity})
	return nil
}

// Highlights returns every highlight recorded so far, in call order.
func (d *Document) Highlights() []Highlight {
	return d.highlights
}

// PageSize reports the page dimensions in page units, derived from the
// longest line and the line count of the page.
func (d *Document) PageSize(page int) (width, height float64, err error) {
	if page < 0 || page >= len(d.pages) {
		return 0, 0, fmt.Errorf("page %d out of range [0, %d)", page, len(d.pages))
	}

	lines := strings.Split(d.pages[page], "\n")
	longest := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return float64(longest) * CharWidth, float64(len(lines)) * LineHeight, nil
}

// Close releases nothing; plain-text documents live in memory.
func (d *Document) Close() error {
	return nil
}
