package svgr

import (
	"testing"

	"github.com/gogpu/svgr/surface"
)

func TestRasterizeFullSquare(t *testing.T) {
	p := RectanglePath(0, 0, 4, 4)
	cov := rasterize(p.Flatten(), surface.NewIRect(0, 0, 4, 4), FillNonZero)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := coverageByte(cov.at(x, y)); got != 255 {
				t.Fatalf("coverage at (%d,%d) = %d, want 255", x, y, got)
			}
		}
	}
}

func TestRasterizeHalfPixel(t *testing.T) {
	// A rectangle covering the left half of a single pixel.
	p := RectanglePath(0, 0, 0.5, 1)
	cov := rasterize(p.Flatten(), surface.NewIRect(0, 0, 1, 1), FillNonZero)

	got := coverageByte(cov.at(0, 0))
	if got < 126 || got > 129 {
		t.Errorf("half-covered pixel = %d, want about 128", got)
	}
}

func TestRasterizeOutsideShapeIsEmpty(t *testing.T) {
	p := RectanglePath(1, 1, 2, 2)
	cov := rasterize(p.Flatten(), surface.NewIRect(0, 0, 4, 4), FillNonZero)

	if got := coverageByte(cov.at(0, 0)); got != 0 {
		t.Errorf("corner outside shape = %d, want 0", got)
	}
	if got := coverageByte(cov.at(2, 2)); got != 255 {
		t.Errorf("center inside shape = %d, want 255", got)
	}
}

func TestRasterizeFillRules(t *testing.T) {
	// Two nested rectangles wound the same way: non-zero fills the hole,
	// even-odd leaves it open.
	p := NewPath()
	p.Rectangle(0, 0, 6, 6)
	p.Rectangle(2, 2, 2, 2)

	bounds := surface.NewIRect(0, 0, 6, 6)

	nonZero := rasterize(p.Flatten(), bounds, FillNonZero)
	if got := coverageByte(nonZero.at(3, 3)); got != 255 {
		t.Errorf("non-zero inner coverage = %d, want 255", got)
	}

	evenOdd := rasterize(p.Flatten(), bounds, FillEvenOdd)
	if got := coverageByte(evenOdd.at(3, 3)); got != 0 {
		t.Errorf("even-odd inner coverage = %d, want 0", got)
	}
	if got := coverageByte(evenOdd.at(1, 1)); got != 255 {
		t.Errorf("even-odd ring coverage = %d, want 255", got)
	}
}

func TestRasterizeRespectsClipBounds(t *testing.T) {
	p := RectanglePath(0, 0, 10, 10)
	bounds := surface.NewIRect(2, 2, 5, 5)
	cov := rasterize(p.Flatten(), bounds, FillNonZero)

	if got := coverageByte(cov.at(2, 2)); got != 255 {
		t.Errorf("inside clip = %d, want 255", got)
	}
}
