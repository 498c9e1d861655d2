package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tsawler/redline/model"
)

func TestUnitsSplitOnBlankLines(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.MinMeaningfulTextLength = 5

	pages := []string{
		"First paragraph of text.\n\nSecond paragraph of text.",
	}

	units := Units(pages, cfg)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[0].Normalized != "first paragraph of text." {
		t.Errorf("unexpected first unit: %q", units[0].Normalized)
	}
	if units[1].Normalized != "second paragraph of text." {
		t.Errorf("unexpected second unit: %q", units[1].Normalized)
	}
}

func TestUnitsBlankLineWithWhitespace(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.MinMeaningfulTextLength = 5

	// The separating line contains spaces; it is still a boundary.
	pages := []string{"Paragraph number one here.\n  \t \nParagraph number two here."}

	units := Units(pages, cfg)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
}

func TestUnitsFilterShortFragments(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.MinMeaningfulTextLength = 10

	// "short text" is exactly 10 runes: equal to the minimum, so discarded.
	pages := []string{
		"tiny\n\nshort text\n\nthis one is long enough to keep",
	}

	units := Units(pages, cfg)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.Contains(units[0].Normalized, "long enough") {
		t.Errorf("kept the wrong unit: %q", units[0].Normalized)
	}
}

func TestUnitsLengthBoundaryIsStrict(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.EnhancedPreprocessing = false

	text := "abcdefghij" // exactly 10 runes after normalization
	cfg.MinMeaningfulTextLength = utf8.RuneCountInString(text)

	if units := Units([]string{text}, cfg); len(units) != 0 {
		t.Errorf("unit of length == minimum must be discarded, got %d units", len(units))
	}

	cfg.MinMeaningfulTextLength--
	if units := Units([]string{text}, cfg); len(units) != 1 {
		t.Errorf("unit of length == minimum+1 must be kept")
	}
}

func TestUnitsOrderAndPageTags(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.MinMeaningfulTextLength = 3

	pages := []string{
		"page zero first paragraph\n\npage zero second paragraph",
		"page one only paragraph",
		"", // empty page yields nothing
		"page three paragraph",
	}

	units := Units(pages, cfg)
	if len(units) != 4 {
		t.Fatalf("expected 4 units, got %d", len(units))
	}

	wantPages := []int{0, 0, 1, 3}
	for i, unit := range units {
		if unit.Page != wantPages[i] {
			t.Errorf("unit %d: page = %d, want %d", i, unit.Page, wantPages[i])
		}
	}

	// Every emitted unit satisfies the minimum-length invariant.
	for i, unit := range units {
		if utf8.RuneCountInString(unit.Normalized) <= cfg.MinMeaningfulTextLength {
			t.Errorf("unit %d violates minimum length: %q", i, unit.Normalized)
		}
	}
}

func TestUnitsPreserveOriginalText(t *testing.T) {
	cfg := model.DefaultConfig()

	original := "The  Original   SPACING and Case"
	units := Units([]string{original}, cfg)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0].Original != original {
		t.Errorf("original text altered: %q", units[0].Original)
	}
	if units[0].Normalized != "the original spacing and case" {
		t.Errorf("unexpected normalized text: %q", units[0].Normalized)
	}
}
