package plaintext

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/redline/model"
)

// near reports whether two page-unit coordinates are equal up to float64
// rounding.
func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFromStringPages(t *testing.T) {
	doc := FromString("page zero text\fpage one text\fpage two text")
	if got := doc.PageCount(); got != 3 {
		t.Fatalf("PageCount() = %d, want 3", got)
	}

	text, err := doc.Text(1)
	if err != nil {
		t.Fatalf("Text(1) failed: %v", err)
	}
	if text != "page one text" {
		t.Errorf("Text(1) = %q", text)
	}

	if _, err := doc.Text(3); err == nil {
		t.Error("expected error for out-of-range page")
	}
	if _, err := doc.Text(-1); err == nil {
		t.Error("expected error for negative page")
	}
}

func TestOpenReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("hello\fworld"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := New().Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	if got := doc.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := New().Open(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSearchGeometry(t *testing.T) {
	doc := FromString("first line here\nsecond line with word and word again")

	rects, err := doc.Search(0, "word")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rects) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(rects))
	}

	// Both hits are on the second line.
	for i, r := range rects {
		if !near(r.Y, LineHeight) {
			t.Errorf("hit %d: Y = %g, want %g", i, r.Y, LineHeight)
		}
		if !near(r.Width, 4*CharWidth) {
			t.Errorf("hit %d: Width = %g, want %g", i, r.Width, 4*CharWidth)
		}
	}

	// "second line with " is 17 runes, so the first hit starts at column 17.
	if want := 17 * CharWidth; !near(rects[0].X, want) {
		t.Errorf("first hit X = %g, want %g", rects[0].X, want)
	}
	if rects[1].X <= rects[0].X {
		t.Error("hits must be reported left to right")
	}
}

func TestSearchMultiLineQueryMisses(t *testing.T) {
	doc := FromString("alpha\nbeta")
	rects, err := doc.Search(0, "alpha\nbeta")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rects) != 0 {
		t.Errorf("multi-line query must yield no hits, got %d", len(rects))
	}
}

func TestHighlightRecording(t *testing.T) {
	doc := FromString("one page only")

	rect := model.NewBBox(0, 0, 10, 14)
	if err := doc.Highlight(0, rect, model.HighlightRemoved, 0.5); err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	if err := doc.Highlight(1, rect, model.HighlightAdded, 0.5); err == nil {
		t.Error("expected error for out-of-range page")
	}
	if err := doc.Highlight(0, rect, model.HighlightAdded, 1.5); err == nil {
		t.Error("expected error for out-of-range opacity")
	}

	hs := doc.Highlights()
	if len(hs) != 1 {
		t.Fatalf("expected 1 recorded highlight, got %d", len(hs))
	}
	if hs[0].Tag != model.HighlightRemoved || hs[0].Rect != rect {
		t.Errorf("unexpected highlight record: %+v", hs[0])
	}
}

func TestPageSize(t *testing.T) {
	doc := FromString("short\na longer line\nmid")

	w, h, err := doc.PageSize(0)
	if err != nil {
		t.Fatalf("PageSize failed: %v", err)
	}
	if want := 13 * CharWidth; !near(w, want) {
		t.Errorf("width = %g, want %g", w, want)
	}
	if want := 3 * LineHeight; !near(h, want) {
		t.Errorf("height = %g, want %g", h, want)
	}
}
