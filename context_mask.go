package svgr

import (
	"fmt"

	"github.com/gogpu/svgr/surface"
)

// generateMask renders a mask definition into an alpha-only surface the
// size of the canvas. The mask region clips the content, content units
// are resolved against the masked element's bounding box, and the
// result is reduced to coverage by luminance or by alpha.
func (ctx *Context) generateMask(id NodeID, viewport Viewport, bbox BoundingBox) (*surface.Shared, error) {
	node, release, err := ctx.acquired.Acquire(id)
	if err != nil {
		return nil, err
	}
	defer release()

	if node.Kind != RefMask {
		return nil, fmt.Errorf("node %d is not a mask: %w", id, ErrNodeNotFound)
	}
	mask := node.Mask

	maskCanvas, err := NewCanvas(ctx.config.Width, ctx.config.Height)
	if err != nil {
		return nil, err
	}

	// Clip to the mask region first, in the region's coordinate system.
	regionTransform := viewport.Transform
	if mask.Units == ObjectBoundingBox {
		if bbox.Rect == nil {
			// The region scales against a box that does not exist, so
			// the mask hides everything.
			return surface.New(ctx.config.Width, ctx.config.Height, surface.TypeAlphaOnly).Share(), nil
		}
		regionTransform = regionTransform.PreTransform(obbMatrix(*bbox.Rect))
	}
	if !mask.Region.IsEmpty() {
		region := RectanglePath(mask.Region.X0, mask.Region.Y0, mask.Region.Width(), mask.Region.Height())
		maskCanvas.SetTransform(regionTransform)
		maskCanvas.ClipPath(region, FillNonZero)
	}

	contentTransform := viewport.Transform
	if mask.ContentUnits == ObjectBoundingBox {
		if bbox.Rect == nil {
			return surface.New(ctx.config.Width, ctx.config.Height, surface.TypeAlphaOnly).Share(), nil
		}
		contentTransform = contentTransform.PreTransform(obbMatrix(*bbox.Rect))
	}
	maskCanvas.SetTransform(contentTransform)

	contentViewport := viewport
	contentViewport.Transform = contentTransform

	ctx.pushCanvas(maskCanvas, CompositingAffines{})
	var drawErr error
	for _, layer := range mask.Content {
		if _, drawErr = ctx.drawLayer(layer, contentViewport); drawErr != nil {
			break
		}
	}
	entry := ctx.popCanvas()
	rendered := entry.canvas.Finish()
	if drawErr != nil {
		return nil, drawErr
	}

	if mask.Type == MaskAlpha {
		return rendered.ExtractAlpha(rendered.Bounds()), nil
	}
	return rendered.ToLuminanceMask(), nil
}
