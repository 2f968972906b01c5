package svgr

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path contains no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Transform returns a copy of the path with every point transformed.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds an ellipse to the path using cubic Bezier curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Circle adds a circle to the path.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// RectanglePath creates a path containing a single rectangle.
func RectanglePath(x, y, w, h float64) *Path {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	return p
}

// EllipsePath creates a path containing a single ellipse.
func EllipsePath(cx, cy, rx, ry float64) *Path {
	p := NewPath()
	p.Ellipse(cx, cy, rx, ry)
	return p
}

// CirclePath creates a path containing a single circle.
func CirclePath(cx, cy, r float64) *Path {
	p := NewPath()
	p.Circle(cx, cy, r)
	return p
}

// flattenTolerance is the maximum distance between a curve and its
// polyline approximation, in device pixels.
const flattenTolerance = 0.1

// Flatten converts the path to closed polylines. Curves are subdivided
// until they deviate from a chord by less than the tolerance. Every
// subpath is treated as closed for filling.
func (p *Path) Flatten() [][]Point {
	var subpaths [][]Point
	var cur []Point

	flush := func() {
		if len(cur) > 1 {
			subpaths = append(subpaths, cur)
		}
		cur = nil
	}

	var start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			start = e.Point
			cur = append(cur, e.Point)
		case LineTo:
			cur = append(cur, e.Point)
		case QuadTo:
			if len(cur) == 0 {
				cur = append(cur, Point{})
			}
			p0 := cur[len(cur)-1]
			// Elevate to a cubic and share the subdivision code.
			c1 := Pt(p0.X+2.0/3.0*(e.Control.X-p0.X), p0.Y+2.0/3.0*(e.Control.Y-p0.Y))
			c2 := Pt(e.Point.X+2.0/3.0*(e.Control.X-e.Point.X), e.Point.Y+2.0/3.0*(e.Control.Y-e.Point.Y))
			cur = flattenCubic(cur, p0, c1, c2, e.Point)
		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, Point{})
			}
			p0 := cur[len(cur)-1]
			cur = flattenCubic(cur, p0, e.Control1, e.Control2, e.Point)
		case Close:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return subpaths
}

// flattenCubic appends a polyline approximation of a cubic Bezier,
// excluding p0 which is already present.
func flattenCubic(dst []Point, p0, c1, c2, p1 Point) []Point {
	// Estimate the number of segments from the curve's control polygon
	// deviation. Wang's formula bounds the error for uniform subdivision.
	d1 := math.Hypot(2*c1.X-p0.X-p1.X, 2*c1.Y-p0.Y-p1.Y)
	d2 := math.Hypot(2*c2.X-p0.X-p1.X, 2*c2.Y-p0.Y-p1.Y)
	d := math.Max(d1, d2)

	n := 1
	if d > 0 {
		n = int(math.Ceil(math.Sqrt(d * 3.0 / (4.0 * flattenTolerance))))
		if n < 1 {
			n = 1
		}
		if n > 256 {
			n = 256
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		e := t * t * t
		dst = append(dst, Pt(
			a*p0.X+b*c1.X+c*c2.X+e*p1.X,
			a*p0.Y+b*c1.Y+c*c2.Y+e*p1.Y,
		))
	}
	return dst
}

// Bounds returns the path's bounding rectangle in its own coordinates.
// Curves are bounded by their flattened approximation.
func (p *Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	seen := false
	for _, sub := range p.Flatten() {
		for _, pt := range sub {
			seen = true
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if !seen {
		return Rect{}
	}
	return NewRect(minX, minY, maxX, maxY)
}

// FillRule determines how self-intersecting paths are filled.
type FillRule int

const (
	// FillNonZero fills where the winding number is non-zero.
	FillNonZero FillRule = iota
	// FillEvenOdd fills where the crossing count is odd.
	FillEvenOdd
)

// Shape is a fillable path with its paint.
type Shape struct {
	Path     *Path
	Fill     Paint
	FillRule FillRule
}
