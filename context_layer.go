package svgr

import "errors"

// withDiscreteLayer runs the full compositing sequence around a draw
// function: compose the element transform, apply the user-space clip,
// isolate into a temporary surface when required, then run filters,
// the object-space clip, and masking or opacity before folding the
// result back with the element's blend operator.
//
// Recoverable problems (singular transforms, dangling or cyclic
// references) degrade to drawing nothing and return an empty bounding
// box; structural problems such as exceeding the nesting depth
// propagate as errors.
func (ctx *Context) withDiscreteLayer(sc *StackingContext, viewport Viewport, draw func(Viewport) (BoundingBox, error)) (BoundingBox, error) {
	ctx.layerDepth++
	defer func() { ctx.layerDepth-- }()
	if ctx.layerDepth > maxLayerNestingDepth {
		return NewBoundingBox(), ErrNestingDepthExceeded
	}

	composed, err := viewport.WithComposedTransform(sc.Transform)
	if err != nil {
		Logger().Warn("skipping layer with singular transform", "error", err)
		return NewBoundingBox(), nil
	}

	target := ctx.canvas()
	target.Save()
	defer target.Restore()
	target.SetTransform(composed.Transform)

	if sc.LinkTarget != "" {
		target.BeginLink(sc.LinkTarget)
		defer target.EndLink()
	}

	// A clip in user space cuts the live target directly; it needs no
	// bounding box and no isolation.
	if sc.ClipUser != 0 {
		ctx.applyClipNode(sc.ClipUser, composed, nil)
	}

	if !sc.shouldIsolate() {
		return draw(composed)
	}
	return ctx.drawIsolated(sc, composed, target, draw)
}

// drawIsolated renders the subtree into a temporary surface and
// composites it back through the filter, clip, mask and blend steps.
func (ctx *Context) drawIsolated(sc *StackingContext, viewport Viewport, target *Canvas, draw func(Viewport) (BoundingBox, error)) (BoundingBox, error) {
	affines := ComputeAffines(viewport.Transform, ctx.initialViewport.Transform, len(ctx.stack)-1)

	temp, err := NewCanvas(ctx.config.Width, ctx.config.Height)
	if err != nil {
		return NewBoundingBox(), err
	}
	temp.SetTransform(affines.ForTemporarySurface)

	tempViewport := viewport
	tempViewport.Transform = affines.ForTemporarySurface

	ctx.pushCanvas(temp, affines)
	bbox, drawErr := draw(tempViewport)
	entry := ctx.popCanvas()
	if drawErr != nil {
		return bbox, drawErr
	}

	src := entry.canvas.Finish()

	if len(sc.Filters) > 0 {
		fctx := &FilterContext{
			Source:  src,
			Bounds:  src.Bounds(),
			Paffine: affines.ForTemporarySurface,
			BBox:    bboxUserRect(bbox),
		}
		filtered, ferr := runFilters(fctx, sc.Filters, ctx.acquired, src)
		switch {
		case ferr == nil:
			src = filtered
		case isRecoverable(ferr):
			if i, ok := filterChainError(ferr); ok {
				Logger().Warn("filter primitive failed, using unfiltered layer", "primitive", i, "error", ferr)
			} else {
				Logger().Warn("filter chain failed, using unfiltered layer", "error", ferr)
			}
		default:
			return bbox, ferr
		}
	}

	// An object-space clip needed the subtree's bounding box, so it was
	// deferred until now. It cuts the target the layer composites onto.
	if sc.ClipObject != 0 {
		ctx.applyClipNode(sc.ClipObject, viewport, &bbox)
	}

	if sc.Mask != 0 {
		mask, merr := ctx.generateMask(sc.Mask, viewport, bbox)
		switch {
		case merr == nil && mask != nil:
			// The mask replaces the opacity step entirely.
			target.CompositeSurface(src, affines.Compositing, sc.BlendMode, 1, mask)
			return bbox, nil
		case merr != nil && !isRecoverable(merr):
			return bbox, merr
		case merr != nil:
			Logger().Warn("mask could not be generated, drawing unmasked", "error", merr)
		}
	}

	target.CompositeSurface(src, affines.Compositing, sc.BlendMode, sc.Opacity, nil)
	return bbox, nil
}

// bboxUserRect returns the bounding box's rectangle in its own user
// space, or an empty rectangle when none was established.
func bboxUserRect(b BoundingBox) Rect {
	if b.Rect == nil {
		return Rect{}
	}
	return *b.Rect
}

// filterChainError reports whether err came out of a specific filter
// primitive, and which one.
func filterChainError(err error) (int, bool) {
	var fe *FilterError
	if errors.As(err, &fe) {
		return fe.Primitive, true
	}
	return 0, false
}
