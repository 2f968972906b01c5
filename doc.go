// Package svgr implements the rendering and compositing engine for a styled
// SVG element tree: the stacking-context compositor, the viewport/transform
// stack, and the filter-pipeline invoker.
//
// The package does not parse SVG or CSS. It consumes an already-resolved
// document: nodes with computed style, tokenized paths, positioned glyph
// runs, and validated filter specifications. Given those, DrawTree produces
// pixels on a Canvas while honoring nested coordinate systems, isolation,
// clipping, masking, filters, blending, and opacity.
//
// Pixel-level work (blur, convolution, color-space conversion, Porter-Duff
// compositing) lives in the surface subpackage; filter-effect primitives
// live in the filters subpackage.
//
// # Quick Start
//
//	doc := svgr.NewDocument()
//	rect := svgr.ShapeLayer(svgr.RectanglePath(10, 10, 80, 80), svgr.SolidPaint(svgr.RGB(1, 0, 0)))
//	root := svgr.GroupLayer(rect)
//	root.Stacking.Opacity = 0.5
//
//	ctx, err := svgr.NewContext(doc, svgr.RenderConfig{Width: 100, Height: 100})
//	if err != nil {
//		return err
//	}
//	img, bbox, err := ctx.DrawTree(root)
//
// # Degradation model
//
// A broken document detail (a reference cycle, a non-invertible transform, a
// zero-area region) never aborts the whole render. The offending element
// contributes an empty bounding box and the rest of the tree keeps drawing.
// Structural misuse of the API (invalid surface dimensions, mismatched
// surface color types) panics.
package svgr
