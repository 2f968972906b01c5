package svgr

// BoundingBox is a bounding box that knows the coordinate space it was
// measured in. Rect is the shape's own geometry (used for
// objectBoundingBox-relative units); InkRect covers everything actually
// painted, stroke included. A nil rectangle means "empty so far" and acts
// as the identity for Insert.
type BoundingBox struct {
	Transform Matrix
	Rect      *Rect
	InkRect   *Rect
}

// NewBoundingBox returns an empty bounding box in the identity space.
func NewBoundingBox() BoundingBox {
	return BoundingBox{Transform: Identity()}
}

// WithTransform returns a copy of the bounding box measured in the given
// coordinate space.
func (b BoundingBox) WithTransform(transform Matrix) BoundingBox {
	b.Transform = transform
	return b
}

// WithRect returns a copy of the bounding box with the geometric rectangle
// set.
func (b BoundingBox) WithRect(rect Rect) BoundingBox {
	b.Rect = &rect
	return b
}

// WithInkRect returns a copy of the bounding box with the ink rectangle
// set.
func (b BoundingBox) WithInkRect(inkRect Rect) BoundingBox {
	b.InkRect = &inkRect
	return b
}

// IsEmpty reports whether nothing has been inserted yet.
func (b *BoundingBox) IsEmpty() bool {
	return b.Rect == nil && b.InkRect == nil
}

func (b *BoundingBox) combine(src *BoundingBox, clip bool) {
	if src.Rect == nil && src.InkRect == nil {
		return
	}

	// Normalize src into b's coordinate space before combining.
	transform := b.Transform.Invert().PreTransform(src.Transform)

	b.Rect = combineRects(b.Rect, src.Rect, transform, clip)
	b.InkRect = combineRects(b.InkRect, src.InkRect, transform, clip)
}

// Insert unions src into b, converting src into b's coordinate space.
func (b *BoundingBox) Insert(src *BoundingBox) {
	b.combine(src, false)
}

// Clip intersects b with src, converting src into b's coordinate space.
func (b *BoundingBox) Clip(src *BoundingBox) {
	b.combine(src, true)
}

func combineRects(r1, r2 *Rect, transform Matrix, clip bool) *Rect {
	if r2 == nil {
		return r1
	}

	t := transform.TransformRect(*r2)
	if r1 == nil {
		return &t
	}

	if clip {
		out, ok := t.Intersection(*r1)
		if !ok {
			out = Rect{}
		}
		return &out
	}

	out := t.Union(*r1)
	return &out
}
