package svgr

import (
	"github.com/gogpu/svgr/surface"
)

// applyClipNode intersects the current canvas clip with a clip-path
// definition. A reference that cannot be resolved, including a cycle
// back into the element being clipped, leaves the clip unchanged. For
// objectBoundingBox units an empty or missing bounding box makes the
// clip empty, matching a clip region of zero size.
func (ctx *Context) applyClipNode(id NodeID, viewport Viewport, bbox *BoundingBox) {
	node, release, err := ctx.acquired.Acquire(id)
	if err != nil {
		Logger().Warn("ignoring unresolvable clip reference", "node", id, "error", err)
		return
	}
	defer release()

	if node.Kind != RefClipPath {
		Logger().Warn("clip reference does not target a clip path", "node", id)
		return
	}
	clip := node.Clip

	transform := viewport.Transform
	if clip.Units == ObjectBoundingBox {
		if bbox == nil || bbox.Rect == nil {
			// No box to scale against: everything is clipped away.
			ctx.canvas().ClipCoverage(make([]uint8, ctx.config.Width*ctx.config.Height))
			return
		}
		transform = transform.PreTransform(obbMatrix(*bbox.Rect))
	}

	coverage := ctx.clipCoverage(clip.Content, transform)
	ctx.canvas().ClipCoverage(coverage)
}

// clipCoverage rasterizes the union of the clip content's shapes into a
// full-canvas coverage buffer. Only shape layers contribute; nested
// structure inside a clip definition is flattened through each shape's
// own transform.
func (ctx *Context) clipCoverage(content []*Layer, transform Matrix) []uint8 {
	full := surface.IRectFromSize(ctx.config.Width, ctx.config.Height)
	coverage := make([]uint8, ctx.config.Width*ctx.config.Height)
	ctx.accumulateClip(content, transform, full, coverage)
	return coverage
}

func (ctx *Context) accumulateClip(content []*Layer, transform Matrix, full surface.IRect, coverage []uint8) {
	for _, layer := range content {
		layerTransform := transform.PreTransform(layer.Stacking.Transform)
		switch layer.Kind {
		case LayerShape:
			if layer.Shape == nil || layer.Shape.Path == nil {
				continue
			}
			transformed := layer.Shape.Path.Transform(layerTransform)
			cov := rasterize(transformed.Flatten(), full, layer.Shape.FillRule)
			for y := 0; y < ctx.config.Height; y++ {
				for x := 0; x < ctx.config.Width; x++ {
					a := coverageByte(cov.at(x, y))
					i := y*ctx.config.Width + x
					if a > coverage[i] {
						coverage[i] = a
					}
				}
			}
		case LayerGroup:
			ctx.accumulateClip(layer.Children, layerTransform, full, coverage)
		default:
			Logger().Debug("ignoring unsupported layer kind inside clip path", "kind", layer.Kind)
		}
	}
}
