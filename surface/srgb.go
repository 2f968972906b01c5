package surface

import "math"

// Byte-to-byte transfer-function tables. Converting through tables keeps
// the per-pixel cost at two lookups and makes conversions exactly
// reproducible.
var (
	linearizeLUT   [256]uint8
	unlinearizeLUT [256]uint8
)

func init() {
	for i := 0; i < 256; i++ {
		s := float64(i) / 255.0

		var linear float64
		if s <= 0.04045 {
			linear = s / 12.92
		} else {
			linear = math.Pow((s+0.055)/1.055, 2.4)
		}
		linearizeLUT[i] = uint8(linear*255.0 + 0.5)

		var srgb float64
		if s <= 0.0031308 {
			srgb = s * 12.92
		} else {
			srgb = 1.055*math.Pow(s, 1.0/2.4) - 0.055
		}
		if srgb > 1 {
			srgb = 1
		}
		unlinearizeLUT[i] = uint8(srgb*255.0 + 0.5)
	}
}

// Linearize converts one gamma-encoded sRGB byte to linear light.
func Linearize(c uint8) uint8 { return linearizeLUT[c] }

// Unlinearize converts one linear-light byte to gamma-encoded sRGB.
func Unlinearize(c uint8) uint8 { return unlinearizeLUT[c] }

// convertChannels returns a copy of s with fn applied to the
// unpremultiplied color channels of every pixel in bounds. Pixels outside
// bounds come out transparent.
func (s *Shared) convertChannels(bounds IRect, typ Type, fn func(uint8) uint8) *Shared {
	out := New(s.width, s.height, typ)
	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			p := s.GetPixel(x, y).Unpremultiply()
			p.R = fn(p.R)
			p.G = fn(p.G)
			p.B = fn(p.B)
			out.SetPixel(x, y, p.Premultiply())
		}
	}
	return out.Share()
}

// ToLinearRGB converts the surface to the linear sRGB color space.
// Linear and alpha-only surfaces pass through unchanged.
func (s *Shared) ToLinearRGB(bounds IRect) *Shared {
	switch s.typ {
	case TypeLinearRGB, TypeAlphaOnly:
		return s
	default:
		return s.convertChannels(bounds, TypeLinearRGB, Linearize)
	}
}

// ToSRGB converts the surface to the gamma-encoded sRGB color space.
// sRGB and alpha-only surfaces pass through unchanged.
func (s *Shared) ToSRGB(bounds IRect) *Shared {
	switch s.typ {
	case TypeSRGB, TypeAlphaOnly:
		return s
	default:
		return s.convertChannels(bounds, TypeSRGB, Unlinearize)
	}
}

// Unpremultiply returns a surface with the alpha premultiplication undone
// for every pixel in bounds. Alpha-only surfaces pass through unchanged.
// The result stores straight color values in a premultiplied layout, so
// it is only suitable as scratch input for kernels that expect straight
// values.
func (s *Shared) Unpremultiply(bounds IRect) *Shared {
	if s.IsAlphaOnly() {
		return s
	}

	out := New(s.width, s.height, s.typ)
	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			out.SetPixel(x, y, s.GetPixel(x, y).Unpremultiply())
		}
	}
	return out.Share()
}
