package svgr

import (
	"math"
	"testing"
)

func TestPathBounds(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want Rect
	}{
		{"rectangle", RectanglePath(1, 2, 3, 4), NewRect(1, 2, 4, 6)},
		{"empty", NewPath(), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Bounds(); !rectNear(got, tt.want) {
				t.Errorf("Bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEllipseBoundsApproximateRadii(t *testing.T) {
	got := EllipsePath(10, 10, 5, 3).Bounds()
	want := NewRect(5, 7, 15, 13)
	const tol = 0.05
	if math.Abs(got.X0-want.X0) > tol || math.Abs(got.Y0-want.Y0) > tol ||
		math.Abs(got.X1-want.X1) > tol || math.Abs(got.Y1-want.Y1) > tol {
		t.Errorf("ellipse bounds = %+v, want about %+v", got, want)
	}
}

func TestPathTransform(t *testing.T) {
	p := RectanglePath(0, 0, 1, 1)
	got := p.Transform(Scale(10, 20)).Bounds()
	if !rectNear(got, NewRect(0, 0, 10, 20)) {
		t.Errorf("transformed bounds = %+v, want (0,0,10,20)", got)
	}
}

func TestFlattenClosesSubpaths(t *testing.T) {
	// An open triangle still flattens to a closed polyline for filling.
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(4, 0)
	p.LineTo(0, 4)

	subs := p.Flatten()
	if len(subs) != 1 {
		t.Fatalf("subpath count = %d, want 1", len(subs))
	}
	// rasterize closes it implicitly; the polyline itself keeps only the
	// explicit points.
	if len(subs[0]) != 3 {
		t.Errorf("point count = %d, want 3", len(subs[0]))
	}
}

func TestFlattenCurveStaysNearEndpoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)

	subs := p.Flatten()
	if len(subs) != 1 {
		t.Fatalf("subpath count = %d, want 1", len(subs))
	}
	pts := subs[0]
	if pts[0] != Pt(0, 0) {
		t.Errorf("first point = %+v, want (0,0)", pts[0])
	}
	last := pts[len(pts)-1]
	if math.Abs(last.X-10) > 1e-9 || math.Abs(last.Y) > 1e-9 {
		t.Errorf("last point = %+v, want (10,0)", last)
	}
	if len(pts) < 4 {
		t.Errorf("curve flattened to %d points, expected subdivision", len(pts))
	}
}
