package surface

import "testing"

func TestComposeOverOutsideBoundsKeepsDestination(t *testing.T) {
	src := randomSurface(16, 16, TypeSRGB, 3)
	dst := randomSurface(16, 16, TypeSRGB, 4)
	bounds := NewIRect(4, 4, 12, 12)

	out := src.Compose(dst, bounds, OpOver)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if bounds.Contains(x, y) {
				continue
			}
			if got, want := out.GetPixel(x, y), dst.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want destination pixel %+v", x, y, got, want)
			}
		}
	}
}

func TestComposeOverOpaqueSourceWins(t *testing.T) {
	srcEx := New(4, 4, TypeSRGB)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			srcEx.SetPixel(x, y, Pixel{R: 200, G: 50, B: 10, A: 255})
		}
	}
	src := srcEx.Share()
	dst := randomSurface(4, 4, TypeSRGB, 11)

	out := src.Compose(dst, src.Bounds(), OpOver)
	if got := out.GetPixel(2, 2); got != (Pixel{R: 200, G: 50, B: 10, A: 255}) {
		t.Errorf("opaque source over destination = %+v", got)
	}
}

func TestExtractAlphaComposeInRoundTripsAlpha(t *testing.T) {
	orig := randomSurface(8, 8, TypeSRGB, 21)
	bounds := orig.Bounds()

	alpha := orig.ExtractAlpha(bounds)
	if alpha.Type() != TypeAlphaOnly {
		t.Fatalf("extracted type = %v, want AlphaOnly", alpha.Type())
	}

	opaqueEx := New(8, 8, TypeSRGB)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			opaqueEx.SetPixel(x, y, Pixel{R: 255, G: 255, B: 255, A: 255})
		}
	}
	opaque := opaqueEx.Share()

	out := alpha.Compose(opaque, bounds, OpIn)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got, want := out.GetPixel(x, y).A, orig.GetPixel(x, y).A; got != want {
				t.Fatalf("alpha at (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestComposeDimensionMismatchPanics(t *testing.T) {
	a := New(4, 4, TypeSRGB).Share()
	b := New(5, 4, TypeSRGB).Share()
	defer func() {
		if recover() == nil {
			t.Fatal("mismatched dimensions should panic")
		}
	}()
	a.Compose(b, a.Bounds(), OpOver)
}

func TestComposeMultiplyMatchesChannelMath(t *testing.T) {
	// Two opaque surfaces: multiply blend reduces to per-channel
	// multiplication of the straight color values.
	aEx := New(1, 1, TypeSRGB)
	aEx.SetPixel(0, 0, Pixel{R: 128, G: 255, B: 0, A: 255})
	bEx := New(1, 1, TypeSRGB)
	bEx.SetPixel(0, 0, Pixel{R: 128, G: 128, B: 200, A: 255})

	out := aEx.Share().Compose(bEx.Share(), NewIRect(0, 0, 1, 1), OpMultiply)
	got := out.GetPixel(0, 0)

	if got.A != 255 {
		t.Fatalf("alpha = %d, want 255", got.A)
	}
	if want := mulDiv255(128, 128); got.R != want {
		t.Errorf("R = %d, want %d", got.R, want)
	}
	if got.G != 128 {
		t.Errorf("G = %d, want 128", got.G)
	}
	if got.B != 0 {
		t.Errorf("B = %d, want 0", got.B)
	}
}

func TestComposeArithmetic(t *testing.T) {
	tests := []struct {
		name           string
		k1, k2, k3, k4 float64
		src, dst       Pixel
		want           Pixel
	}{
		{
			// k2=1 passes the first input through.
			name: "identity on first input",
			k2:   1,
			src:  Pixel{R: 10, G: 20, B: 30, A: 255},
			dst:  Pixel{R: 200, G: 200, B: 200, A: 255},
			want: Pixel{R: 10, G: 20, B: 30, A: 255},
		},
		{
			// k3=1 passes the second input through.
			name: "identity on second input",
			k3:   1,
			src:  Pixel{R: 10, G: 20, B: 30, A: 255},
			dst:  Pixel{R: 200, G: 100, B: 50, A: 255},
			want: Pixel{R: 200, G: 100, B: 50, A: 255},
		},
		{
			// k4 floods, clamped to the computed alpha.
			name: "flood clamps to alpha",
			k4:   1,
			src:  Pixel{},
			dst:  Pixel{},
			want: Pixel{R: 255, G: 255, B: 255, A: 255},
		},
		{
			// Zero coefficients leave the pixel unwritten.
			name: "zero output not written",
			src:  Pixel{R: 50, G: 50, B: 50, A: 255},
			dst:  Pixel{R: 50, G: 50, B: 50, A: 255},
			want: Pixel{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aEx := New(1, 1, TypeSRGB)
			aEx.SetPixel(0, 0, tt.src)
			bEx := New(1, 1, TypeSRGB)
			bEx.SetPixel(0, 0, tt.dst)

			out := aEx.Share().ComposeArithmetic(bEx.Share(), NewIRect(0, 0, 1, 1), tt.k1, tt.k2, tt.k3, tt.k4)
			if got := out.GetPixel(0, 0); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOperatorFallbackIsOver(t *testing.T) {
	s := Pixel{R: 100, G: 100, B: 100, A: 255}
	d := Pixel{R: 5, G: 5, B: 5, A: 255}
	if got := operatorFunc(Operator(999))(s, d); got != opOver(s, d) {
		t.Error("unknown operator should behave as source-over")
	}
}
