package surface

import "testing"

func TestExtractAlpha(t *testing.T) {
	src := randomSurface(6, 6, TypeSRGB, 8)
	bounds := NewIRect(1, 1, 5, 5)

	out := src.ExtractAlpha(bounds)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			got := out.GetPixel(x, y)
			if got.R != 0 || got.G != 0 || got.B != 0 {
				t.Fatalf("color channels at (%d,%d) = %+v, want zero", x, y, got)
			}
			want := uint8(0)
			if bounds.Contains(x, y) {
				want = src.GetPixel(x, y).A
			}
			if got.A != want {
				t.Fatalf("alpha at (%d,%d) = %d, want %d", x, y, got.A, want)
			}
		}
	}
}

func TestFlood(t *testing.T) {
	base := New(5, 5, TypeSRGB).Share()
	bounds := NewIRect(1, 1, 4, 4)

	out := base.Flood(bounds, Pixel{R: 255, G: 0, B: 0, A: 128})

	inside := out.GetPixel(2, 2)
	if inside.A != 128 || inside.R != 128 {
		t.Errorf("flooded pixel = %+v, want premultiplied half-red", inside)
	}
	if got := out.GetPixel(0, 0); got != (Pixel{}) {
		t.Errorf("pixel outside bounds = %+v, want transparent", got)
	}
}

func TestFloodTransparentColorIsNoop(t *testing.T) {
	base := New(3, 3, TypeSRGB).Share()
	out := base.Flood(base.Bounds(), Pixel{R: 255, A: 0})
	if got := out.GetPixel(1, 1); got != (Pixel{}) {
		t.Errorf("transparent flood wrote %+v", got)
	}
}

func TestOffset(t *testing.T) {
	ex := New(6, 6, TypeSRGB)
	ex.SetPixel(2, 2, Pixel{R: 50, A: 255})
	src := ex.Share()

	out := src.Offset(src.Bounds(), 2, 1)
	if got := out.GetPixel(4, 3); got.A != 255 {
		t.Errorf("shifted pixel missing: %+v", got)
	}
	if got := out.GetPixel(2, 2); got != (Pixel{}) {
		t.Errorf("source position should be cleared, got %+v", got)
	}
}

func TestOffsetDropsPixelsShiftedOutOfBounds(t *testing.T) {
	ex := New(4, 4, TypeSRGB)
	ex.SetPixel(3, 3, Pixel{G: 70, A: 255})
	src := ex.Share()

	out := src.Offset(src.Bounds(), 2, 2)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := out.GetPixel(x, y); got != (Pixel{}) {
				t.Fatalf("pixel (%d,%d) = %+v, want transparent", x, y, got)
			}
		}
	}
}

func TestTile(t *testing.T) {
	src := randomSurface(8, 8, TypeSRGB, 15)
	bounds := NewIRect(2, 3, 6, 7)

	out := src.Tile(bounds)
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("tile size = %dx%d, want 4x4", out.Width(), out.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, want := out.GetPixel(x, y), src.GetPixel(x+2, y+3); got != want {
				t.Fatalf("tile pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestTileEmptyBoundsPanics(t *testing.T) {
	src := New(4, 4, TypeSRGB).Share()
	defer func() {
		if recover() == nil {
			t.Fatal("tiling an empty region should panic")
		}
	}()
	src.Tile(IRect{})
}

func TestPaintImageTiled(t *testing.T) {
	tileEx := New(2, 2, TypeSRGB)
	tileEx.SetPixel(0, 0, Pixel{R: 10, A: 255})
	tileEx.SetPixel(1, 0, Pixel{R: 20, A: 255})
	tileEx.SetPixel(0, 1, Pixel{R: 30, A: 255})
	tileEx.SetPixel(1, 1, Pixel{R: 40, A: 255})
	tile := tileEx.Share()

	base := New(6, 6, TypeSRGB).Share()
	out := base.PaintImageTiled(base.Bounds(), tile, 0, 0)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if got, want := out.GetPixel(x, y), tile.GetPixel(x%2, y%2); got != want {
				t.Fatalf("tiled pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestScaleToDoublesSize(t *testing.T) {
	ex := New(2, 2, TypeSRGB)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			ex.SetPixel(x, y, Pixel{R: 80, G: 80, B: 80, A: 255})
		}
	}
	src := ex.Share()

	out, newBounds := src.Scale(src.Bounds(), 2, 2)
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("scaled size = %dx%d, want 4x4", out.Width(), out.Height())
	}
	if newBounds != NewIRect(0, 0, 4, 4) {
		t.Fatalf("scaled bounds = %+v", newBounds)
	}
	if got := out.GetPixel(1, 1); got.A != 255 || got.R != 80 {
		t.Errorf("interior pixel after scale = %+v", got)
	}
}

func TestToLuminanceMaskSurface(t *testing.T) {
	ex := New(2, 1, TypeSRGB)
	ex.SetPixel(0, 0, Pixel{R: 255, G: 255, B: 255, A: 255})
	ex.SetPixel(1, 0, Pixel{A: 255})
	src := ex.Share()

	out := src.ToLuminanceMask()
	if got := out.GetPixel(0, 0).A; got != 255 {
		t.Errorf("white luminance = %d, want 255", got)
	}
	if got := out.GetPixel(1, 0).A; got != 0 {
		t.Errorf("black luminance = %d, want 0", got)
	}
}
