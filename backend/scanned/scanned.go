// Package scanned implements a read-only backend over a directory of page
// images, recovering page text through OCR.
//
// Geometry is not available for OCR-recovered text: Search always reports no
// hits and Highlight is unsupported. Comparison runs against this backend
// therefore produce classification and similarity metrics only, relying on
// the pipeline's per-unit isolation policy for the highlight pass.
package scanned

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tsawler/redline/backend"
	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/ocr"
)

// pageExtensions are the image types accepted as pages.
var pageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
}

// Backend opens directories of page images. Page order is the lexical order
// of the file names.
type Backend struct {
	language string
}

// Option configures the backend.
type Option func(*Backend)

// WithLanguage sets the OCR language string (e.g. "eng+fra").
func WithLanguage(lang string) Option {
	return func(b *Backend) {
		b.language = lang
	}
}

// New creates a scanned-page backend.
func New(opts ...Option) Backend {
	b := Backend{}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Open lists the page images under dir, recognizes each one in order, and
// returns a document over the recovered text. Recognition happens once, at
// open time.
func (b Backend) Open(dir string) (backend.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("open scanned document: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if pageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("open scanned document: no page images in %s", dir)
	}
	sort.Strings(paths)

	client, err := ocr.New()
	if err != nil {
		return nil, fmt.Errorf("create OCR client: %w", err)
	}
	defer client.Close()
	if b.language != "" {
		if err := client.SetLanguage(b.language); err != nil {
			return nil, fmt.Errorf("set OCR language: %w", err)
		}
	}

	pages := make([]string, 0, len(paths))
	for _, path := range paths {
		img, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read page image %s: %w", path, err)
		}
		text, err := client.PageText(img)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", path, err)
		}
		pages = append(pages, text)
	}

	return &Document{pages: pages}, nil
}

// Document holds OCR-recovered page text.
type Document struct {
	pages []string
}

// PageCount reports the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Text returns the recovered text of the 0-indexed page.
func (d *Document) Text(page int) (string, error) {
	if page < 0 || page >= len(d.pages) {
		return "", fmt.Errorf("page %d out of range [0, %d)", page, len(d.pages))
	}
	return d.pages[page], nil
}

// Search reports no hits: OCR recovery loses the geometry needed to map
// text back to rectangles.
func (d *Document) Search(page int, text string) ([]model.BBox, error) {
	if page < 0 || page >= len(d.pages) {
		return nil, fmt.Errorf("page %d out of range [0, %d)", page, len(d.pages))
	}
	return nil, nil
}

// Highlight is unsupported for scanned documents.
func (d *Document) Highlight(page int, rect model.BBox, tag model.HighlightTag, opacity float64) error {
	return fmt.Errorf("scanned documents do not support highlighting")
}

// Close releases nothing; recovered text lives in memory.
func (d *Document) Close() error {
	return nil
}
