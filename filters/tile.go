package filters

import (
	"github.com/gogpu/svgr"
	"github.com/gogpu/svgr/surface"
)

// Tile repeats a rectangular region of its input across the whole
// filter region. An empty tile rectangle fails the primitive.
type Tile struct {
	// TileBounds is the device-space source rectangle to repeat.
	TileBounds surface.IRect
}

func (t *Tile) Render(ctx *svgr.FilterContext, input *surface.Shared) (*surface.Shared, error) {
	bounds := t.TileBounds.Intersect(input.Bounds())
	if bounds.IsEmpty() {
		return nil, svgr.ErrZeroSize
	}
	tile := input.Tile(bounds)
	return input.PaintImageTiled(ctx.Bounds, tile, bounds.X0, bounds.Y0), nil
}
