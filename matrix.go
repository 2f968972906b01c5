package svgr

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other). The resulting
// transformation applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PreTransform returns the transformation that applies other first,
// then m.
func (m Matrix) PreTransform(other Matrix) Matrix {
	return m.Multiply(other)
}

// PostTransform returns the transformation that applies m first,
// then other.
func (m Matrix) PostTransform(other Matrix) Matrix {
	return other.Multiply(m)
}

// PreScale returns the transformation that scales first, then applies m.
func (m Matrix) PreScale(x, y float64) Matrix {
	return m.Multiply(Scale(x, y))
}

// PostScale returns the transformation that applies m first, then scales.
func (m Matrix) PostScale(x, y float64) Matrix {
	return Scale(x, y).Multiply(m)
}

// PreTranslate returns the transformation that translates first, then
// applies m.
func (m Matrix) PreTranslate(x, y float64) Matrix {
	return m.Multiply(Translate(x, y))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// TransformRect returns the axis-aligned bounding rectangle of the four
// transformed corners of r.
func (m Matrix) TransformRect(r Rect) Rect {
	p0 := m.TransformPoint(Point{X: r.X0, Y: r.Y0})
	p1 := m.TransformPoint(Point{X: r.X1, Y: r.Y0})
	p2 := m.TransformPoint(Point{X: r.X0, Y: r.Y1})
	p3 := m.TransformPoint(Point{X: r.X1, Y: r.Y1})
	return Rect{
		X0: math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X)),
		Y0: math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y)),
		X1: math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X)),
		Y1: math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y)),
	}
}

// IsInvertible reports whether the matrix has an inverse.
func (m Matrix) IsInvertible() bool {
	det := m.A*m.E - m.B*m.D
	return math.Abs(det) >= 1e-10 && !math.IsInf(det, 0) && !math.IsNaN(det)
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible; callers
// that must distinguish check IsInvertible first.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
