//go:build !ocr

package scanned

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/redline/ocr"
)

func TestOpenEmptyDirectory(t *testing.T) {
	if _, err := New().Open(t.TempDir()); err == nil {
		t.Error("expected error for directory without page images")
	}
}

func TestOpenIgnoresNonImageFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a page"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New().Open(dir); err == nil {
		t.Error("expected error when only non-image files are present")
	}
}

func TestOpenWithoutOCRSupport(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "page-001.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New().Open(dir)
	if !errors.Is(err, ocr.ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled without the ocr build tag, got %v", err)
	}
}
