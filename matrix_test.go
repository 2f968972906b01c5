package svgr

import (
	"math"
	"testing"
)

func matrixNear(a, b Matrix) bool {
	const eps = 1e-9
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps &&
		math.Abs(a.C-b.C) < eps && math.Abs(a.D-b.D) < eps &&
		math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Multiply(other) applies other first: scaling then translating must
	// leave the translation unscaled.
	m := Translate(10, 20).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	if got != Pt(12, 22) {
		t.Errorf("TransformPoint = %+v, want (12, 22)", got)
	}
}

func TestMatrixPrePost(t *testing.T) {
	s := Scale(2, 3)
	tr := Translate(5, 7)

	pre := s.PreTransform(tr) // translate, then scale
	if got := pre.TransformPoint(Pt(0, 0)); got != Pt(10, 21) {
		t.Errorf("PreTransform point = %+v, want (10, 21)", got)
	}

	post := s.PostTransform(tr) // scale, then translate
	if got := post.TransformPoint(Pt(0, 0)); got != Pt(5, 7) {
		t.Errorf("PostTransform point = %+v, want (5, 7)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -4)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(math.Pi / 3)},
		{"composed", Translate(1, 2).Multiply(Rotate(0.7)).Multiply(Scale(3, 5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.m.IsInvertible() {
				t.Fatal("matrix should be invertible")
			}
			round := tt.m.Multiply(tt.m.Invert())
			if !matrixNear(round, Identity()) {
				t.Errorf("m * m^-1 = %+v, want identity", round)
			}
		})
	}
}

func TestMatrixSingular(t *testing.T) {
	zeroScale := Scale(0, 1)
	if zeroScale.IsInvertible() {
		t.Error("zero-scale matrix reported invertible")
	}
	if got := zeroScale.Invert(); !matrixNear(got, Identity()) {
		t.Errorf("singular Invert = %+v, want identity", got)
	}
}

func TestMatrixTransformRect(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	got := Rotate(math.Pi / 2).TransformRect(r)
	want := NewRect(-10, 0, 0, 10)
	const eps = 1e-9
	if math.Abs(got.X0-want.X0) > eps || math.Abs(got.Y0-want.Y0) > eps ||
		math.Abs(got.X1-want.X1) > eps || math.Abs(got.Y1-want.Y1) > eps {
		t.Errorf("TransformRect = %+v, want %+v", got, want)
	}
}
