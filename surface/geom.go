package surface

// IRect is an integer pixel rectangle, half-open on X1 and Y1.
type IRect struct {
	X0, Y0, X1, Y1 int
}

// NewIRect returns the rectangle with corners (x0, y0) and (x1, y1).
func NewIRect(x0, y0, x1, y1 int) IRect {
	return IRect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// IRectFromSize returns the rectangle from the origin to (w, h).
func IRectFromSize(w, h int) IRect {
	return IRect{X1: w, Y1: h}
}

// Width returns the horizontal extent of the rectangle.
func (r IRect) Width() int { return r.X1 - r.X0 }

// Height returns the vertical extent of the rectangle.
func (r IRect) Height() int { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rectangle contains no pixels.
func (r IRect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r IRect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Intersect returns the overlap of r and other, empty when disjoint.
func (r IRect) Intersect(other IRect) IRect {
	out := IRect{
		X0: max(r.X0, other.X0),
		Y0: max(r.Y0, other.Y0),
		X1: min(r.X1, other.X1),
		Y1: min(r.Y1, other.Y1),
	}
	if out.IsEmpty() {
		return IRect{}
	}
	return out
}
