package model

import "math"

// BBox is an axis-aligned rectangle on a page, in page units. The origin is
// the top-left corner of the page with Y growing downward; backends that
// natively use bottom-left page coordinates convert before producing
// rectangles.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a rectangle from its top-left corner and dimensions.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Area returns the area of the rectangle.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the rectangle has no area.
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Intersects checks whether two rectangles overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Union returns the smallest rectangle containing both b and other.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Scale returns the rectangle with every coordinate multiplied by factor.
// Annotators use this to map page units to pixels.
func (b BBox) Scale(factor float64) BBox {
	return BBox{
		X:      b.X * factor,
		Y:      b.Y * factor,
		Width:  b.Width * factor,
		Height: b.Height * factor,
	}
}
