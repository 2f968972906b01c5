package svgr

import "testing"

func rectNear(a, b Rect) bool {
	const eps = 1e-9
	d := func(x, y float64) float64 {
		if x > y {
			return x - y
		}
		return y - x
	}
	return d(a.X0, b.X0) < eps && d(a.Y0, b.Y0) < eps && d(a.X1, b.X1) < eps && d(a.Y1, b.Y1) < eps
}

func TestBoundingBoxInsertIntoEmpty(t *testing.T) {
	b := NewBoundingBox()
	src := NewBoundingBox().WithRect(NewRect(1, 2, 3, 4))

	b.Insert(&src)
	if b.Rect == nil || !rectNear(*b.Rect, NewRect(1, 2, 3, 4)) {
		t.Errorf("Rect after insert = %+v", b.Rect)
	}
}

func TestBoundingBoxInsertEmptyIsIdentity(t *testing.T) {
	b := NewBoundingBox().WithRect(NewRect(0, 0, 5, 5))
	empty := NewBoundingBox()

	b.Insert(&empty)
	if !rectNear(*b.Rect, NewRect(0, 0, 5, 5)) {
		t.Errorf("inserting an empty box changed Rect to %+v", *b.Rect)
	}
}

func TestBoundingBoxInsertUnions(t *testing.T) {
	b := NewBoundingBox().WithRect(NewRect(0, 0, 5, 5))
	src := NewBoundingBox().WithRect(NewRect(3, 3, 10, 12))

	b.Insert(&src)
	if !rectNear(*b.Rect, NewRect(0, 0, 10, 12)) {
		t.Errorf("union = %+v, want (0,0,10,12)", *b.Rect)
	}
}

func TestBoundingBoxInsertConvertsSpaces(t *testing.T) {
	// src is measured under a 2x scale; converting into b's identity
	// space must double its coordinates.
	b := NewBoundingBox()
	src := NewBoundingBox().WithTransform(Scale(2, 2)).WithRect(NewRect(1, 1, 2, 2))

	b.Insert(&src)
	if !rectNear(*b.Rect, NewRect(2, 2, 4, 4)) {
		t.Errorf("converted rect = %+v, want (2,2,4,4)", *b.Rect)
	}
}

func TestBoundingBoxClip(t *testing.T) {
	tests := []struct {
		name string
		base Rect
		clip Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 20, 20), NewRect(5, 5, 10, 10)},
		{"disjoint collapses to empty", NewRect(0, 0, 2, 2), NewRect(5, 5, 8, 8), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoundingBox().WithRect(tt.base)
			src := NewBoundingBox().WithRect(tt.clip)
			b.Clip(&src)
			if b.Rect == nil {
				t.Fatal("Rect is nil after clip; a rectangle, possibly empty, is expected")
			}
			if !rectNear(*b.Rect, tt.want) {
				t.Errorf("clipped rect = %+v, want %+v", *b.Rect, tt.want)
			}
		})
	}
}

func TestBoundingBoxIsEmpty(t *testing.T) {
	b := NewBoundingBox()
	if !b.IsEmpty() {
		t.Error("fresh box should be empty")
	}
	b = b.WithInkRect(NewRect(0, 0, 1, 1))
	if b.IsEmpty() {
		t.Error("box with ink rect should not be empty")
	}
}
