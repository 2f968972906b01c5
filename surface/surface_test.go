package surface

import "testing"

func TestTypeCombine(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want Type
	}{
		{"alpha with srgb", TypeAlphaOnly, TypeSRGB, TypeSRGB},
		{"srgb with alpha", TypeSRGB, TypeAlphaOnly, TypeSRGB},
		{"alpha with linear", TypeAlphaOnly, TypeLinearRGB, TypeLinearRGB},
		{"alpha with alpha", TypeAlphaOnly, TypeAlphaOnly, TypeAlphaOnly},
		{"srgb with srgb", TypeSRGB, TypeSRGB, TypeSRGB},
		{"linear with linear", TypeLinearRGB, TypeLinearRGB, TypeLinearRGB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Combine(tt.b); got != tt.want {
				t.Errorf("Combine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTypeCombineMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("combining sRGB with LinearRGB should panic")
		}
	}()
	TypeSRGB.Combine(TypeLinearRGB)
}

func TestNewInvalidDimensionsPanics(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d, %d) should panic", tt.width, tt.height)
				}
			}()
			New(tt.width, tt.height, TypeSRGB)
		})
	}
}

func TestShareMovesOwnership(t *testing.T) {
	ex := New(4, 4, TypeSRGB)
	ex.SetPixel(1, 1, Pixel{R: 10, G: 20, B: 30, A: 255})

	shared := ex.Share()
	if got := shared.GetPixel(1, 1); got != (Pixel{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("shared pixel = %+v", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("writing through a shared-off Exclusive should panic")
		}
	}()
	ex.SetPixel(0, 0, Pixel{A: 1})
}

func TestToExclusiveCopies(t *testing.T) {
	ex := New(2, 2, TypeSRGB)
	ex.SetPixel(0, 0, Pixel{R: 100, A: 255})
	shared := ex.Share()

	writable := shared.ToExclusive()
	writable.SetPixel(0, 0, Pixel{R: 1, A: 255})

	if got := shared.GetPixel(0, 0); got.R != 100 {
		t.Errorf("mutation through the copy leaked into the shared surface: %+v", got)
	}
}

func TestPixelPremultiplyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Pixel
	}{
		{"opaque", Pixel{R: 10, G: 20, B: 30, A: 255}},
		{"transparent", Pixel{A: 0}},
		{"half alpha", Pixel{R: 200, G: 100, B: 50, A: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := tt.p.Premultiply().Unpremultiply()
			if tt.p.A == 0 {
				if rt != (Pixel{}) {
					t.Errorf("transparent pixel should round-trip to zero, got %+v", rt)
				}
				return
			}
			// Quantization may cost a unit per channel.
			diff := func(a, b uint8) int {
				d := int(a) - int(b)
				if d < 0 {
					d = -d
				}
				return d
			}
			if diff(rt.R, tt.p.R) > 1 || diff(rt.G, tt.p.G) > 1 || diff(rt.B, tt.p.B) > 1 || rt.A != tt.p.A {
				t.Errorf("round trip %+v -> %+v", tt.p, rt)
			}
		})
	}
}

func TestLuminanceMaskPixel(t *testing.T) {
	// Opaque white has luminance 255, opaque black 0.
	if got := (Pixel{R: 255, G: 255, B: 255, A: 255}).ToLuminanceMask(); got.A != 255 {
		t.Errorf("white luminance = %d, want 255", got.A)
	}
	if got := (Pixel{A: 255}).ToLuminanceMask(); got.A != 0 {
		t.Errorf("black luminance = %d, want 0", got.A)
	}
	// Premultiplied half-alpha white masks at half strength.
	got := Pixel{R: 128, G: 128, B: 128, A: 128}.ToLuminanceMask()
	if got.A != 128 {
		t.Errorf("half-covered white luminance = %d, want 128", got.A)
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	// Unlinearize(Linearize(x)) cannot be exact for all bytes through
	// 8-bit tables, but it must be close and monotone at the extremes.
	if Linearize(0) != 0 || Unlinearize(0) != 0 {
		t.Error("black must stay black through transfer functions")
	}
	if Linearize(255) != 255 || Unlinearize(255) != 255 {
		t.Error("white must stay white through transfer functions")
	}
	if Linearize(128) >= 128 {
		t.Error("mid grays must darken when linearized")
	}
}

func TestToLinearRGBPassThrough(t *testing.T) {
	ex := New(2, 2, TypeLinearRGB)
	s := ex.Share()
	if got := s.ToLinearRGB(s.Bounds()); got != s {
		t.Error("linear surface should pass through unchanged")
	}

	alpha := New(2, 2, TypeAlphaOnly).Share()
	if got := alpha.ToSRGB(alpha.Bounds()); got != alpha {
		t.Error("alpha-only surface should pass through unchanged")
	}
}

func TestToLinearAndBackPreservesAlpha(t *testing.T) {
	ex := New(3, 3, TypeSRGB)
	ex.SetPixel(1, 1, Pixel{R: 60, G: 120, B: 180, A: 200})
	s := ex.Share()

	linear := s.ToLinearRGB(s.Bounds())
	if linear.Type() != TypeLinearRGB {
		t.Fatalf("type = %v, want LinearRGB", linear.Type())
	}
	back := linear.ToSRGB(linear.Bounds())
	if back.Type() != TypeSRGB {
		t.Fatalf("type = %v, want sRGB", back.Type())
	}
	if got := back.GetPixel(1, 1).A; got != 200 {
		t.Errorf("alpha after round trip = %d, want 200", got)
	}
}
