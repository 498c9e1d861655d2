// Package annotate renders page overlays: rasterized pages with translucent
// highlight rectangles composited on top. It is how backends without native
// markup (plain text, scanned pages) get a visual rendition of a comparison.
//
// Coordinates follow the document model: origin at the top-left of the page,
// Y growing downward. A scale factor maps document units to pixels.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/redline/model"
)

// tagColors maps each highlight tag to its fill color. Alpha is applied per
// highlight from the requested opacity.
var tagColors = map[model.HighlightTag]color.NRGBA{
	model.HighlightRemoved: {R: 0xff, G: 0x00, B: 0x00},
	model.HighlightAdded:   {R: 0x00, G: 0xcc, B: 0x00},
}

// Overlay is a mutable page raster that highlight rectangles are drawn onto.
type Overlay struct {
	img   *image.NRGBA
	scale float64
}

// New wraps an existing page image, copying it so the source is never
// modified. scale is the number of pixels per document unit and must be
// positive.
func New(base image.Image, scale float64) (*Overlay, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", scale)
	}

	bounds := base.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(img, img.Bounds(), base, bounds.Min, xdraw.Src)

	return &Overlay{img: img, scale: scale}, nil
}

// NewBlankPage creates a white page of the given size in document units,
// rasterized at scale pixels per unit. Useful for backends that track page
// geometry but have no page image of their own.
func NewBlankPage(width, height, scale float64) (*Overlay, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %gx%g", width, height)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", scale)
	}

	w := int(math.Ceil(width * scale))
	h := int(math.Ceil(height * scale))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	return &Overlay{img: img, scale: scale}, nil
}

// Highlight composites a translucent rectangle over the page. Opacity is in
// [0, 1]; rectangles outside the page are clipped, and a rectangle entirely
// off-page draws nothing.
func (o *Overlay) Highlight(rect model.BBox, tag model.HighlightTag, opacity float64) error {
	if opacity < 0 || opacity > 1 {
		return fmt.Errorf("opacity %g out of range [0, 1]", opacity)
	}
	fill, ok := tagColors[tag]
	if !ok {
		return fmt.Errorf("unknown highlight tag %d", tag)
	}
	fill.A = uint8(math.Round(opacity * 0xff))

	r := image.Rect(
		int(math.Floor(rect.X*o.scale)),
		int(math.Floor(rect.Y*o.scale)),
		int(math.Ceil((rect.X+rect.Width)*o.scale)),
		int(math.Ceil((rect.Y+rect.Height)*o.scale)),
	).Intersect(o.img.Bounds())
	if r.Empty() {
		return nil
	}

	xdraw.Draw(o.img, r, image.NewUniform(fill), image.Point{}, xdraw.Over)
	return nil
}

// Image returns the composited page. The returned image is the overlay's
// backing store; drawing further highlights mutates it.
func (o *Overlay) Image() image.Image {
	return o.img
}

// WritePNG encodes the composited page as PNG.
func (o *Overlay) WritePNG(w io.Writer) error {
	if err := png.Encode(w, o.img); err != nil {
		return fmt.Errorf("encode overlay: %w", err)
	}
	return nil
}

// SavePNG writes the composited page to a PNG file.
func (o *Overlay) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create overlay file: %w", err)
	}

	if err := o.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
