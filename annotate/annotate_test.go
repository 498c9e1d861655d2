package annotate

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/tsawler/redline/model"
)

func TestNewBlankPageIsWhite(t *testing.T) {
	o, err := NewBlankPage(100, 50, 1)
	if err != nil {
		t.Fatalf("NewBlankPage failed: %v", err)
	}

	bounds := o.Image().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 50 {
		t.Fatalf("page bounds = %v, want 100x50", bounds)
	}

	r, g, b, a := o.Image().At(10, 10).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("blank page pixel = (%d,%d,%d,%d), want opaque white", r, g, b, a)
	}
}

func TestNewBlankPageRejectsBadArguments(t *testing.T) {
	if _, err := NewBlankPage(0, 50, 1); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewBlankPage(100, 50, 0); err == nil {
		t.Error("expected error for zero scale")
	}
}

func TestHighlightOpaqueFill(t *testing.T) {
	o, err := NewBlankPage(100, 50, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := o.Highlight(model.NewBBox(10, 10, 20, 10), model.HighlightRemoved, 1.0); err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}

	got := o.Image().(*image.NRGBA).NRGBAAt(15, 15)
	want := color.NRGBA{R: 0xff, A: 0xff}
	if got != want {
		t.Errorf("highlighted pixel = %v, want %v", got, want)
	}

	// Outside the rectangle the page stays white.
	if got := o.Image().(*image.NRGBA).NRGBAAt(50, 40); got != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("pixel outside highlight = %v, want white", got)
	}
}

func TestHighlightTranslucentBlend(t *testing.T) {
	o, err := NewBlankPage(100, 50, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := o.Highlight(model.NewBBox(0, 0, 100, 50), model.HighlightAdded, 0.5); err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}

	px := o.Image().(*image.NRGBA).NRGBAAt(25, 25)
	// Green over white at half opacity: green channel stays high, red and
	// blue drop to roughly half.
	if px.G < px.R || px.G < px.B {
		t.Errorf("blend lost the green dominance: %v", px)
	}
	if px.R == 0xff || px.R == 0 {
		t.Errorf("red channel %d shows no blending", px.R)
	}
}

func TestHighlightClipsToPage(t *testing.T) {
	o, err := NewBlankPage(10, 10, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Entirely off-page: no error, nothing drawn.
	if err := o.Highlight(model.NewBBox(100, 100, 5, 5), model.HighlightRemoved, 1.0); err != nil {
		t.Fatalf("off-page highlight failed: %v", err)
	}
	if got := o.Image().(*image.NRGBA).NRGBAAt(5, 5); got != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("off-page highlight changed the page: %v", got)
	}

	// Partially off-page: clipped, the on-page part is drawn.
	if err := o.Highlight(model.NewBBox(5, 5, 20, 20), model.HighlightRemoved, 1.0); err != nil {
		t.Fatalf("clipped highlight failed: %v", err)
	}
	if got := o.Image().(*image.NRGBA).NRGBAAt(8, 8); got.R != 0xff || got.G != 0 {
		t.Errorf("clipped highlight missing inside the page: %v", got)
	}
}

func TestHighlightValidation(t *testing.T) {
	o, err := NewBlankPage(10, 10, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := o.Highlight(model.NewBBox(0, 0, 5, 5), model.HighlightRemoved, 1.5); err == nil {
		t.Error("expected error for opacity above 1")
	}
	if err := o.Highlight(model.NewBBox(0, 0, 5, 5), model.HighlightTag(99), 0.5); err == nil {
		t.Error("expected error for unknown tag")
	}
}

func TestScaleMapsUnitsToPixels(t *testing.T) {
	o, err := NewBlankPage(20, 10, 2)
	if err != nil {
		t.Fatal(err)
	}

	bounds := o.Image().Bounds()
	if bounds.Dx() != 40 || bounds.Dy() != 20 {
		t.Fatalf("page bounds = %v, want 40x20 at scale 2", bounds)
	}

	if err := o.Highlight(model.NewBBox(5, 0, 5, 10), model.HighlightRemoved, 1.0); err != nil {
		t.Fatal(err)
	}

	// Document X=5 maps to pixel X=10.
	if got := o.Image().(*image.NRGBA).NRGBAAt(9, 5); got.R != 0xff || got.G != 0xff {
		t.Errorf("pixel left of scaled highlight = %v, want white", got)
	}
	if got := o.Image().(*image.NRGBA).NRGBAAt(11, 5); got.R != 0xff || got.G != 0 {
		t.Errorf("pixel inside scaled highlight = %v, want red", got)
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	o, err := NewBlankPage(10, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := o.Highlight(model.NewBBox(0, 0, 10, 10), model.HighlightAdded, 1.0); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := o.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}
