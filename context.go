package svgr

import (
	"fmt"

	"github.com/gogpu/svgr/surface"
)

// RenderConfig configures one render of a document tree.
type RenderConfig struct {
	// Width and Height are the output size in pixels.
	Width, Height int

	// Dpi for resolving physical units. Zero means 96.
	Dpi Dpi
}

// layerEntry is one level of the temporary-surface stack. The base
// canvas sits at depth zero with zero-valued affines.
type layerEntry struct {
	canvas  *Canvas
	affines CompositingAffines
}

// Context renders a document tree into a pixel surface. It owns the
// canvas stack for isolated layers, the per-render reference tracker,
// and the viewport state.
type Context struct {
	doc      *Document
	config   RenderConfig
	acquired *AcquiredNodes

	stack []layerEntry

	initialViewport Viewport
	layerDepth      int
}

// NewContext creates a rendering context for a document.
func NewContext(doc *Document, config RenderConfig) (*Context, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("render size %dx%d: %w", config.Width, config.Height, ErrZeroSize)
	}
	if config.Dpi == (Dpi{}) {
		config.Dpi = Dpi{X: 96, Y: 96}
	}

	base, err := NewCanvas(config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	return &Context{
		doc:             doc,
		config:          config,
		acquired:        newAcquiredNodes(doc),
		stack:           []layerEntry{{canvas: base}},
		initialViewport: NewViewport(config.Dpi, float64(config.Width), float64(config.Height)),
	}, nil
}

// canvas returns the current draw target.
func (ctx *Context) canvas() *Canvas {
	return ctx.stack[len(ctx.stack)-1].canvas
}

func (ctx *Context) pushCanvas(c *Canvas, affines CompositingAffines) {
	ctx.stack = append(ctx.stack, layerEntry{canvas: c, affines: affines})
}

func (ctx *Context) popCanvas() layerEntry {
	top := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return top
}

// DrawTree renders a layer tree and returns the finished surface along
// with the tree's bounding box.
func (ctx *Context) DrawTree(root *Layer) (*surface.Shared, BoundingBox, error) {
	bbox, err := ctx.drawLayer(root, ctx.initialViewport)
	if err != nil {
		return nil, bbox, err
	}
	return ctx.stack[0].canvas.Finish(), bbox, nil
}

// drawLayer renders one layer inside its own discrete compositing layer.
func (ctx *Context) drawLayer(layer *Layer, viewport Viewport) (BoundingBox, error) {
	return ctx.withDiscreteLayer(&layer.Stacking, viewport, func(vp Viewport) (BoundingBox, error) {
		return ctx.drawLayerContent(layer, vp)
	})
}

func (ctx *Context) drawLayerContent(layer *Layer, viewport Viewport) (BoundingBox, error) {
	if layer.Viewport != nil {
		return ctx.drawInNewViewport(layer, viewport)
	}
	return ctx.drawContent(layer, viewport)
}

// drawInNewViewport draws a layer's content inside its layout viewport:
// the viewport rectangle optionally clips overflow, and the content's
// coordinate system maps through the view box transform. An empty
// viewport or view box renders nothing.
func (ctx *Context) drawInNewViewport(layer *Layer, viewport Viewport) (BoundingBox, error) {
	lv := layer.Viewport
	bbox := NewBoundingBox().WithTransform(viewport.Transform)
	if lv.Rect.IsEmpty() {
		return bbox, nil
	}

	t, err := lv.transform()
	if err != nil {
		if isRecoverable(err) {
			Logger().Warn("skipping layer with unusable viewport", "error", err)
			return bbox, nil
		}
		return bbox, err
	}

	c := ctx.canvas()
	c.Save()
	defer c.Restore()

	if lv.Overflow == OverflowHidden {
		c.ClipPath(RectanglePath(lv.Rect.X0, lv.Rect.Y0, lv.Rect.Width(), lv.Rect.Height()), FillNonZero)
	}

	inner, err := viewport.WithComposedTransform(t)
	if err != nil {
		Logger().Warn("skipping layer with singular viewport transform", "error", err)
		return bbox, nil
	}
	if lv.ViewBox != nil {
		inner = inner.WithViewBox(lv.ViewBox.Width(), lv.ViewBox.Height())
	} else {
		inner = inner.WithViewBox(lv.Rect.Width(), lv.Rect.Height())
	}
	c.SetTransform(inner.Transform)

	content, err := ctx.drawContent(layer, inner)
	if err != nil {
		return bbox, err
	}
	bbox.Insert(&content)
	return bbox, nil
}

func (ctx *Context) drawContent(layer *Layer, viewport Viewport) (BoundingBox, error) {
	switch layer.Kind {
	case LayerGroup:
		return ctx.drawChildren(layer.Children, viewport)
	case LayerShape:
		return ctx.drawShape(layer.Shape, viewport)
	case LayerText:
		return ctx.drawText(layer.Text, viewport)
	case LayerUse:
		return ctx.drawUse(layer.Use, viewport)
	default:
		return NewBoundingBox(), nil
	}
}

func (ctx *Context) drawChildren(children []*Layer, viewport Viewport) (BoundingBox, error) {
	bbox := NewBoundingBox().WithTransform(viewport.Transform)
	for _, child := range children {
		childBox, err := ctx.drawLayer(child, viewport)
		if err != nil {
			return bbox, err
		}
		bbox.Insert(&childBox)
	}
	return bbox, nil
}

// drawShape fills a shape's path with its paint. A paint whose space
// cannot be inverted renders nothing but still contributes its extent.
func (ctx *Context) drawShape(shape *Shape, viewport Viewport) (BoundingBox, error) {
	if shape == nil || shape.Path == nil || shape.Path.IsEmpty() {
		return NewBoundingBox().WithTransform(viewport.Transform), nil
	}

	userRect := shape.Path.Bounds()
	bbox := NewBoundingBox().
		WithTransform(viewport.Transform).
		WithRect(userRect).
		WithInkRect(userRect)

	if shape.Fill == nil {
		return bbox, nil
	}

	sample, err := ctx.paintSampler(shape.Fill, viewport, userRect)
	if err != nil {
		Logger().Warn("skipping shape with unusable paint", "error", err)
		return bbox, nil
	}
	ctx.canvas().FillPath(shape.Path, shape.FillRule, sample)
	return bbox, nil
}

// drawUse renders a referenced subtree shifted by the use offset. A
// reference that cannot be resolved, including a self-reference cycle,
// renders nothing. Zero width or height disables rendering.
func (ctx *Context) drawUse(use *UseRef, viewport Viewport) (BoundingBox, error) {
	bbox := NewBoundingBox().WithTransform(viewport.Transform)
	if use == nil || use.Width == 0 || use.Height == 0 {
		return bbox, nil
	}

	node, release, err := ctx.acquired.Acquire(use.Node)
	if err != nil {
		if isRecoverable(err) {
			Logger().Warn("skipping unresolvable use reference", "error", err)
			return bbox, nil
		}
		return bbox, err
	}
	defer release()

	if node.Kind != RefGroup {
		Logger().Warn("use reference does not target a group", "node", use.Node)
		return bbox, nil
	}

	shifted, err := viewport.WithComposedTransform(Translate(use.X, use.Y))
	if err != nil {
		Logger().Warn("skipping use with singular transform", "error", err)
		return bbox, nil
	}
	ctx.canvas().Save()
	ctx.canvas().SetTransform(shifted.Transform)
	defer ctx.canvas().Restore()

	return ctx.drawChildren(node.Group, shifted)
}

// paintSampler builds a device-space sampler for a paint under the
// current viewport. Pattern paints rasterize their tile first.
func (ctx *Context) paintSampler(paint Paint, viewport Viewport, bbox Rect) (sampler, error) {
	if pp, ok := paint.(*PatternPaint); ok {
		return ctx.patternSampler(pp, viewport, bbox)
	}
	sample, ok := resolvePaint(paint, viewport.Transform, bbox)
	if !ok {
		return nil, ErrInvalidTransform
	}
	return sample, nil
}

// GetPaintSourceSurface renders a full-canvas surface filled with the
// paint, as seen under the context's initial viewport. Used as a filter
// input and by callers that need the raw paint pixels.
func (ctx *Context) GetPaintSourceSurface(paint Paint, bbox Rect) (*surface.Shared, error) {
	c, err := NewCanvas(ctx.config.Width, ctx.config.Height)
	if err != nil {
		return nil, err
	}
	sample, err := ctx.paintSampler(paint, ctx.initialViewport, bbox)
	if err != nil {
		return nil, err
	}
	full := RectanglePath(0, 0, float64(ctx.config.Width), float64(ctx.config.Height))
	c.SetTransform(Identity())
	c.FillPath(full, FillNonZero, sample)
	return c.Finish(), nil
}

// Links returns the hyperlink regions recorded on the base canvas.
func (ctx *Context) Links() []LinkRegion {
	return ctx.stack[0].canvas.Links()
}

// GetSnapshot composites the live canvas stack, bottom to top, into a
// single surface showing what has been drawn so far. Each temporary
// layer folds in through its snapshot transform.
func (ctx *Context) GetSnapshot() (*surface.Shared, error) {
	acc := ctx.stack[0].canvas.Snapshot().ToExclusive()
	for _, entry := range ctx.stack[1:] {
		layer := entry.canvas.Snapshot()

		tmp, err := NewCanvas(ctx.config.Width, ctx.config.Height)
		if err != nil {
			return nil, err
		}
		tmp.CompositeSurface(acc.Share(), Identity(), surface.OpOver, 1, nil)
		tmp.CompositeSurface(layer, entry.affines.ForSnapshot, surface.OpOver, 1, nil)
		acc = tmp.Finish().ToExclusive()
	}
	return acc.Share(), nil
}

// obbMatrix maps the unit square onto a bounding rectangle.
func obbMatrix(r Rect) Matrix {
	return Identity().
		PreTranslate(r.X0, r.Y0).
		PreScale(r.Width(), r.Height())
}
