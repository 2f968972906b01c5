package surface

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// ExtractAlpha returns an alpha-only surface whose alpha channel matches
// this surface within bounds. Pixels outside bounds are transparent.
func (s *Shared) ExtractAlpha(bounds IRect) *Shared {
	out := New(s.width, s.height, TypeAlphaOnly)
	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			out.SetPixel(x, y, Pixel{A: s.GetPixel(x, y).A})
		}
	}
	return out.Share()
}

// ToLuminanceMask returns a surface whose alpha channel is the perceptual
// luminance of this surface's pixels, suitable for masking.
func (s *Shared) ToLuminanceMask() *Shared {
	out := New(s.width, s.height, s.typ)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			out.SetPixel(x, y, s.GetPixel(x, y).ToLuminanceMask())
		}
	}
	return out.Share()
}

// Flood returns a surface of the same size filled with the given straight
// (non-premultiplied) color within bounds and transparent elsewhere.
func (s *Shared) Flood(bounds IRect, color Pixel) *Shared {
	out := New(s.width, s.height, s.typ)
	if color.A > 0 {
		p := color.Premultiply()
		for y := bounds.Y0; y < bounds.Y1; y++ {
			for x := bounds.X0; x < bounds.X1; x++ {
				out.SetPixel(x, y, p)
			}
		}
	}
	return out.Share()
}

// Offset returns a surface with the image shifted by (dx, dy) pixels.
// Only pixels that started inside bounds and land inside bounds survive;
// everything else is transparent.
func (s *Shared) Offset(bounds IRect, dx, dy int) *Shared {
	out := New(s.width, s.height, s.typ)

	outputBounds := IRect{
		X0: bounds.X0 + dx, Y0: bounds.Y0 + dy,
		X1: bounds.X1 + dx, Y1: bounds.Y1 + dy,
	}.Intersect(bounds)

	for y := outputBounds.Y0; y < outputBounds.Y1; y++ {
		for x := outputBounds.X0; x < outputBounds.X1; x++ {
			out.SetPixel(x, y, s.GetPixel(x-dx, y-dy))
		}
	}
	return out.Share()
}

// Tile returns a new surface with the size and content of bounds.
// Panics if bounds is empty, since surfaces cannot be zero-sized.
func (s *Shared) Tile(bounds IRect) *Shared {
	if bounds.IsEmpty() {
		panic("cannot tile an empty region")
	}

	out := New(bounds.Width(), bounds.Height(), s.typ)
	for y := 0; y < bounds.Height(); y++ {
		for x := 0; x < bounds.Width(); x++ {
			out.SetPixel(x, y, s.GetPixel(bounds.X0+x, bounds.Y0+y))
		}
	}
	return out.Share()
}

// PaintImageTiled returns a surface of the same size as s with image
// repeated to fill bounds, phase-shifted so that a tile corner lands at
// (x, y).
func (s *Shared) PaintImageTiled(bounds IRect, img *Shared, x, y int) *Shared {
	out := New(s.width, s.height, img.typ)

	mod := func(v, m int) int {
		v %= m
		if v < 0 {
			v += m
		}
		return v
	}

	for oy := bounds.Y0; oy < bounds.Y1; oy++ {
		sy := mod(oy-y, img.height)
		for ox := bounds.X0; ox < bounds.X1; ox++ {
			sx := mod(ox-x, img.width)
			out.SetPixel(ox, oy, img.GetPixel(sx, sy))
		}
	}
	return out.Share()
}

// ScaleTo scales the surface by (x, y) into a width×height surface,
// clipped by bounds.
func (s *Shared) ScaleTo(width, height int, bounds IRect, x, y float64) *Shared {
	out := New(width, height, s.typ)

	dst := out.RGBA().SubImage(image.Rect(bounds.X0, bounds.Y0, bounds.X1, bounds.Y1)).(*image.RGBA)
	src := s.Image()
	draw.BiLinear.Transform(dst,
		f64.Aff3{x, 0, 0, 0, y, 0},
		src, src.Bounds(), draw.Src, nil)

	return out.Share()
}

// Scale returns a scaled version of the surface along with the scaled
// bounds.
func (s *Shared) Scale(bounds IRect, x, y float64) (*Shared, IRect) {
	newWidth := int(math.Ceil(float64(s.width) * x))
	newHeight := int(math.Ceil(float64(s.height) * y))

	newBounds := IRect{
		X0: int(math.Floor(float64(bounds.X0) * x)),
		Y0: int(math.Floor(float64(bounds.Y0) * y)),
		X1: int(math.Ceil(float64(bounds.X1) * x)),
		Y1: int(math.Ceil(float64(bounds.Y1) * y)),
	}

	return s.ScaleTo(newWidth, newHeight, newBounds, x, y), newBounds
}
