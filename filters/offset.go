package filters

import (
	"math"

	"github.com/gogpu/svgr"
	"github.com/gogpu/svgr/surface"
)

// Offset shifts its input by a user-space vector. The shift transforms
// into device pixels and rounds; pixels shifted outside the filter
// bounds are dropped.
type Offset struct {
	Dx, Dy float64
}

func (o *Offset) Render(ctx *svgr.FilterContext, input *surface.Shared) (*surface.Shared, error) {
	shift := ctx.Paffine.TransformVector(svgr.Pt(o.Dx, o.Dy))
	dx := int(math.Round(shift.X))
	dy := int(math.Round(shift.Y))
	if dx == 0 && dy == 0 {
		return input, nil
	}
	return input.Offset(ctx.Bounds, dx, dy), nil
}
