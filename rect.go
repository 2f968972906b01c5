package svgr

import (
	"math"

	"github.com/gogpu/svgr/surface"
)

// Rect is an axis-aligned rectangle given by its two corners.
// It is considered empty when X1 <= X0 or Y1 <= Y0.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect returns the rectangle with corners (x0, y0) and (x1, y1).
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectFromSize returns the rectangle from the origin to (w, h).
func RectFromSize(w, h float64) Rect {
	return Rect{X1: w, Y1: h}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Intersection returns the overlap of r and other. The second return value
// is false when the rectangles do not overlap.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	out := Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
	if out.X1 < out.X0 || out.Y1 < out.Y0 {
		return Rect{}, false
	}
	return out, true
}

// Outer returns the smallest integer pixel rectangle that contains r.
func (r Rect) Outer() surface.IRect {
	return surface.IRect{
		X0: int(math.Floor(r.X0)),
		Y0: int(math.Floor(r.Y0)),
		X1: int(math.Ceil(r.X1)),
		Y1: int(math.Ceil(r.Y1)),
	}
}

// FromIRect converts an integer pixel rectangle to a float rectangle.
func FromIRect(r surface.IRect) Rect {
	return Rect{X0: float64(r.X0), Y0: float64(r.Y0), X1: float64(r.X1), Y1: float64(r.Y1)}
}
