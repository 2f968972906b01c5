package filters

import (
	"github.com/gogpu/svgr"
	"github.com/gogpu/svgr/surface"
)

// Flood replaces the filter region with a uniform color, ignoring its
// input entirely.
type Flood struct {
	Color   svgr.RGBA
	Opacity float64
}

func (f *Flood) Render(ctx *svgr.FilterContext, input *surface.Shared) (*surface.Shared, error) {
	c := f.Color
	c.A *= clampUnit(f.Opacity)

	// The chain runs in linear light, so the flood color linearizes
	// before premultiplication.
	px := c.Pixel().Unpremultiply()
	px.R = surface.Linearize(px.R)
	px.G = surface.Linearize(px.G)
	px.B = surface.Linearize(px.B)

	return input.Flood(ctx.Bounds, px), nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
