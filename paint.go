package svgr

// Paint produces a color for every point it covers. Gradient paints
// carry their own geometry; the renderer maps device pixels into paint
// space before sampling.
type Paint interface {
	// ColorAt returns the color at a paint-space point.
	ColorAt(x, y float64) RGBA

	paintMarker()
}

// unitsPaint is implemented by paints whose geometry can live in
// objectBoundingBox units and carry an extra transform.
type unitsPaint interface {
	paintUnits() CoordUnits
	paintTransform() Matrix
}

type solidPaint struct {
	color RGBA
}

// SolidPaint creates a paint that is the same color everywhere.
func SolidPaint(c RGBA) Paint {
	return solidPaint{color: c}
}

func (p solidPaint) ColorAt(x, y float64) RGBA { return p.color }
func (solidPaint) paintMarker()                {}

// PatternPaint fills with a referenced pattern definition. The pattern
// content is rasterized into a tile and repeated.
type PatternPaint struct {
	Node NodeID
}

func (*PatternPaint) paintMarker() {}

// ColorAt on a bare pattern paint is transparent; patterns are sampled
// through their rendered tile, not analytically.
func (*PatternPaint) ColorAt(x, y float64) RGBA { return Transparent }

// sampler maps a device-space pixel center to a color.
type sampler func(x, y float64) RGBA

// resolvePaint builds a device-space sampler for a paint. userToDevice
// is the transform active when the shape is filled, and bbox is the
// shape's untransformed extent for objectBoundingBox paints. Returns
// false when the paint space cannot be inverted.
func resolvePaint(p Paint, userToDevice Matrix, bbox Rect) (sampler, bool) {
	if sp, ok := p.(solidPaint); ok {
		c := sp.color
		return func(x, y float64) RGBA { return c }, true
	}

	paintSpace := userToDevice
	if up, ok := p.(unitsPaint); ok {
		if up.paintUnits() == ObjectBoundingBox {
			paintSpace = paintSpace.PreTransform(obbMatrix(bbox))
		}
		paintSpace = paintSpace.PreTransform(up.paintTransform())
	}
	if !paintSpace.IsInvertible() {
		return nil, false
	}
	inv := paintSpace.Invert()
	return func(x, y float64) RGBA {
		pt := inv.TransformPoint(Pt(x, y))
		return p.ColorAt(pt.X, pt.Y)
	}, true
}
