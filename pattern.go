package svgr

import (
	"math"

	"github.com/gogpu/svgr/surface"
)

// patternSampler resolves a pattern paint into a device-space sampler.
// The pattern's content renders once into a tile surface; sampling wraps
// device coordinates into the tile.
func (ctx *Context) patternSampler(pp *PatternPaint, viewport Viewport, bbox Rect) (sampler, error) {
	node, release, err := ctx.acquired.Acquire(pp.Node)
	if err != nil {
		return nil, err
	}
	defer release()

	if node.Kind != RefPattern {
		return nil, ErrNodeNotFound
	}
	def := node.Pattern

	// Resolve the tile rectangle into user space.
	region := def.Region
	if def.Units == ObjectBoundingBox {
		region = obbMatrix(bbox).TransformRect(region)
	}
	if region.IsEmpty() {
		return nil, ErrZeroSize
	}

	// The tile is rasterized at device resolution.
	deviceRegion := viewport.Transform.TransformRect(region)
	tileW := int(math.Ceil(deviceRegion.Width()))
	tileH := int(math.Ceil(deviceRegion.Height()))
	if tileW <= 0 || tileH <= 0 {
		return nil, ErrZeroSize
	}

	tile, err := ctx.renderPatternTile(def, viewport, region, bbox, tileW, tileH)
	if err != nil {
		return nil, err
	}

	originX := deviceRegion.X0
	originY := deviceRegion.Y0
	return func(x, y float64) RGBA {
		tx := wrapCoord(x-originX, float64(tileW))
		ty := wrapCoord(y-originY, float64(tileH))
		p := tile.GetPixel(int(tx), int(ty)).Unpremultiply()
		return RGBA{
			R: float64(p.R) / 255,
			G: float64(p.G) / 255,
			B: float64(p.B) / 255,
			A: float64(p.A) / 255,
		}
	}, nil
}

// renderPatternTile draws the pattern content into one tile surface.
func (ctx *Context) renderPatternTile(def *PatternDef, viewport Viewport, region Rect, bbox Rect, tileW, tileH int) (*surface.Shared, error) {
	tileCanvas, err := NewCanvas(tileW, tileH)
	if err != nil {
		return nil, err
	}

	// Content coordinates map so the region's origin lands on the
	// tile's origin at device scale.
	sx := float64(tileW) / region.Width()
	sy := float64(tileH) / region.Height()
	contentTransform := Scale(sx, sy).PreTranslate(-region.X0, -region.Y0)
	if def.ContentUnits == ObjectBoundingBox {
		contentTransform = contentTransform.PreTransform(obbMatrix(bbox))
	}
	tileCanvas.SetTransform(contentTransform)

	tileViewport := viewport
	tileViewport.Transform = contentTransform

	ctx.pushCanvas(tileCanvas, CompositingAffines{})
	var drawErr error
	for _, layer := range def.Content {
		if _, drawErr = ctx.drawLayer(layer, tileViewport); drawErr != nil {
			break
		}
	}
	entry := ctx.popCanvas()
	tile := entry.canvas.Finish()
	if drawErr != nil {
		return nil, drawErr
	}
	return tile, nil
}

// wrapCoord wraps v into [0, size), clamping the result just inside the
// upper edge so float rounding cannot index one past the end.
func wrapCoord(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = size - 1
	}
	return v
}
