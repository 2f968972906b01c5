// Package surface provides the typed pixel buffers that the compositor and
// the filter pipeline operate on.
//
// A buffer exists in one of two ownership states. An Exclusive surface has
// exactly one owner and is the only state that permits writing. A Shared
// surface is read-only and may be aliased freely; getting a writable
// buffer back out of it always copies. The split is enforced by the types
// themselves, not by a runtime flag.
//
// Pixels are stored as premultiplied RGBA bytes, four per pixel, row-major
// with a fixed stride, matching the layout of image.RGBA.
package surface

import (
	"fmt"
	"image"
)

// Type describes what the color channels of a surface mean.
type Type int

const (
	// TypeSRGB holds gamma-encoded sRGB color channels.
	TypeSRGB Type = iota
	// TypeLinearRGB holds linear-light color channels.
	TypeLinearRGB
	// TypeAlphaOnly holds only meaningful alpha; color channels are zero.
	TypeAlphaOnly
)

// String returns the name of the surface type.
func (t Type) String() string {
	switch t {
	case TypeSRGB:
		return "sRGB"
	case TypeLinearRGB:
		return "LinearRGB"
	case TypeAlphaOnly:
		return "AlphaOnly"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Combine returns the type of a surface derived from surfaces of types t
// and other. AlphaOnly surfaces are type-transparent. Combining two
// distinct color types is a logic bug in the caller and panics.
func (t Type) Combine(other Type) Type {
	switch {
	case t == TypeAlphaOnly:
		return other
	case other == TypeAlphaOnly:
		return t
	case t == other:
		return t
	default:
		panic(fmt.Sprintf("cannot combine surface types %v and %v", t, other))
	}
}

// Pixel is one premultiplied RGBA pixel.
type Pixel struct {
	R, G, B, A uint8
}

// Unpremultiply undoes alpha premultiplication for one pixel.
func (p Pixel) Unpremultiply() Pixel {
	if p.A == 0 {
		return Pixel{}
	}
	unpremul := func(c uint8) uint8 {
		return uint8((uint32(c)*255 + uint32(p.A)/2) / uint32(p.A))
	}
	return Pixel{
		R: unpremul(p.R),
		G: unpremul(p.G),
		B: unpremul(p.B),
		A: p.A,
	}
}

// Premultiply applies alpha premultiplication to one pixel.
func (p Pixel) Premultiply() Pixel {
	return Pixel{
		R: mulDiv255(p.R, p.A),
		G: mulDiv255(p.G, p.A),
		B: mulDiv255(p.B, p.A),
		A: p.A,
	}
}

// MulAlpha scales all channels of a premultiplied pixel by a/255.
func (p Pixel) MulAlpha(a uint8) Pixel {
	if a == 255 {
		return p
	}
	return Pixel{
		R: mulDiv255(p.R, a),
		G: mulDiv255(p.G, a),
		B: mulDiv255(p.B, a),
		A: mulDiv255(p.A, a),
	}
}

// ToLuminanceMask converts the pixel to an alpha-only pixel whose alpha is
// the perceptual luminance of the color channels. On premultiplied input
// this yields luminance times alpha, which is exactly the mask value the
// SVG luminance mask calls for.
func (p Pixel) ToLuminanceMask() Pixel {
	l := (2126*uint32(p.R) + 7152*uint32(p.G) + 722*uint32(p.B)) / 10000
	return Pixel{A: uint8(l)}
}

// mulDiv255 computes a*b/255 with rounding, the byte-domain multiply used
// throughout premultiplied compositing.
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// Shared is a read-only pixel surface. It may be aliased by any number of
// readers; all transforming operations allocate a fresh surface.
type Shared struct {
	width, height, stride int
	data                  []uint8
	typ                   Type
}

// Width returns the surface width in pixels.
func (s *Shared) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Shared) Height() int { return s.height }

// Stride returns the byte distance between rows.
func (s *Shared) Stride() int { return s.stride }

// Type returns the color interpretation of the surface.
func (s *Shared) Type() Type { return s.typ }

// Bounds returns the full pixel rectangle of the surface.
func (s *Shared) Bounds() IRect { return IRectFromSize(s.width, s.height) }

// IsAlphaOnly reports whether only the alpha channel carries meaning.
func (s *Shared) IsAlphaOnly() bool { return s.typ == TypeAlphaOnly }

// GetPixel returns the premultiplied pixel at (x, y).
func (s *Shared) GetPixel(x, y int) Pixel {
	i := y*s.stride + x*4
	return Pixel{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Image returns an image view over the surface's pixels without copying.
// The view must be treated as read-only.
func (s *Shared) Image() image.Image {
	return &image.RGBA{
		Pix:    s.data,
		Stride: s.stride,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// ToExclusive returns a writable copy of the surface. The copy is
// unconditional: a Shared surface may be aliased by any number of readers,
// so handing out its own buffer for writing is never safe.
func (s *Shared) ToExclusive() *Exclusive {
	out := New(s.width, s.height, s.typ)
	copy(out.surface.data, s.data)
	return out
}

// WithType returns a surface aliasing the same pixels under a different
// color interpretation. Used when pixel values are known to be valid in
// the new interpretation, e.g. after manual conversion.
func (s *Shared) WithType(typ Type) *Shared {
	return &Shared{
		width:  s.width,
		height: s.height,
		stride: s.stride,
		data:   s.data,
		typ:    typ,
	}
}

// copySurface returns a writable full copy with the given type.
func (s *Shared) copySurface(typ Type) *Exclusive {
	out := New(s.width, s.height, typ)
	copy(out.surface.data, s.data)
	return out
}

// Exclusive is a pixel surface with a single owner; it is the only state
// that permits writing. Share converts it into a Shared surface, after
// which the Exclusive handle is dead: further access panics.
type Exclusive struct {
	surface *Shared
}

// New creates a writable surface of the given dimensions, cleared to
// transparent. Non-positive dimensions are a programmer error and panic.
func New(width, height int, typ Type) *Exclusive {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid surface dimensions %dx%d", width, height))
	}
	return &Exclusive{
		surface: &Shared{
			width:  width,
			height: height,
			stride: width * 4,
			data:   make([]uint8, width*height*4),
			typ:    typ,
		},
	}
}

// Share converts the surface into its read-only state. Ownership of the
// pixels moves into the returned Shared surface; the Exclusive handle must
// not be used afterwards.
func (s *Exclusive) Share() *Shared {
	out := s.surface
	s.surface = nil
	return out
}

// Width returns the surface width in pixels.
func (s *Exclusive) Width() int { return s.surface.width }

// Height returns the surface height in pixels.
func (s *Exclusive) Height() int { return s.surface.height }

// Stride returns the byte distance between rows.
func (s *Exclusive) Stride() int { return s.surface.stride }

// Type returns the color interpretation of the surface.
func (s *Exclusive) Type() Type { return s.surface.typ }

// Bounds returns the full pixel rectangle of the surface.
func (s *Exclusive) Bounds() IRect { return s.surface.Bounds() }

// GetPixel returns the premultiplied pixel at (x, y).
func (s *Exclusive) GetPixel(x, y int) Pixel { return s.surface.GetPixel(x, y) }

// SetPixel stores the premultiplied pixel at (x, y).
func (s *Exclusive) SetPixel(x, y int, p Pixel) {
	i := y*s.surface.stride + x*4
	d := s.surface.data
	d[i] = p.R
	d[i+1] = p.G
	d[i+2] = p.B
	d[i+3] = p.A
}

// Snapshot returns an immutable copy of the surface's current contents.
// The Exclusive handle stays usable.
func (s *Exclusive) Snapshot() *Shared {
	out := New(s.surface.width, s.surface.height, s.surface.typ)
	copy(out.surface.data, s.surface.data)
	return out.Share()
}

// RGBA returns a mutable image view over the surface's pixels without
// copying. The view shares the surface's buffer.
func (s *Exclusive) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    s.surface.data,
		Stride: s.surface.stride,
		Rect:   image.Rect(0, 0, s.surface.width, s.surface.height),
	}
}

// Clear resets every pixel to transparent black.
func (s *Exclusive) Clear() {
	d := s.surface.data
	for i := range d {
		d[i] = 0
	}
}
