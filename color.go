package svgr

import (
	"github.com/gogpu/svgr/surface"
)

// RGBA represents a straight (non-premultiplied) color with red, green,
// blue, and alpha components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// clamp255 clamps a value to the [0, 255] range.
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Pixel converts the color to a premultiplied surface pixel.
func (c RGBA) Pixel() surface.Pixel {
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return surface.Pixel{
		R: uint8(clamp255(c.R*a*255) + 0.5),
		G: uint8(clamp255(c.G*a*255) + 0.5),
		B: uint8(clamp255(c.B*a*255) + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
