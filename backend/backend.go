// Package backend defines the document collaborator contracts the comparison
// core depends on. The core never parses or renders documents itself; it
// drives these interfaces for page text, text search and highlighting, and
// treats any backend failure during a run as fatal to that run.
//
// Bundled implementations live in the subpackages: plaintext (form-feed
// paginated text files with synthetic geometry) and scanned (OCR over a
// directory of page images).
package backend

import "github.com/tsawler/redline/model"

// Document is an open paginated document. Implementations need not be safe
// for use by two simultaneous comparison runs.
type Document interface {
	// PageCount reports the number of pages.
	PageCount() int

	// Text returns the UTF-8 text of the 0-indexed page.
	Text(page int) (string, error)

	// Search returns the rectangles covering each occurrence of text on the
	// page, in document order, or nothing when the text does not occur.
	// Search is read-only and idempotent for identical queries within one
	// run.
	Search(page int, text string) ([]model.BBox, error)

	// Highlight marks a rectangle on the page. The tag distinguishes
	// removed from added content; opacity is in [0, 1].
	Highlight(page int, rect model.BBox, tag model.HighlightTag, opacity float64) error

	// Close releases any resources held by the document.
	Close() error
}

// Backend opens documents by path.
type Backend interface {
	Open(path string) (Document, error)
}

// PageSearcher binds one page of a Document to the search capability the
// geometry resolver consumes.
type PageSearcher struct {
	Doc  Document
	Page int
}

// Search queries the bound page.
func (p PageSearcher) Search(text string) ([]model.BBox, error) {
	return p.Doc.Search(p.Page, text)
}
