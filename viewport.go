package svgr

import "fmt"

// Dpi is the render resolution along each axis.
type Dpi struct {
	X, Y float64
}

// CoordUnits selects the coordinate system for clip, mask and pattern
// contents.
type CoordUnits int

const (
	// UserSpaceOnUse resolves lengths against the current viewport.
	UserSpaceOnUse CoordUnits = iota
	// ObjectBoundingBox resolves lengths against the referencing
	// element's bounding box, scaled to a unit square.
	ObjectBoundingBox
)

// Viewport is the current coordinate system for one drawing scope: the
// resolution, the box against which percentage lengths resolve, and the
// transform from user space to the root device space.
//
// Viewports are immutable values. Entering a drawing scope derives a new
// one with the With* methods; leaving the scope simply drops it.
type Viewport struct {
	Dpi Dpi

	// ViewBox resolves percentage lengths.
	ViewBox Rect

	// Transform maps user space to device space. It is invertible for
	// every viewport in scope; derivations that would break that fail
	// instead of producing a degenerate viewport.
	Transform Matrix
}

// NewViewport returns the root viewport for a render.
func NewViewport(dpi Dpi, viewBoxWidth, viewBoxHeight float64) Viewport {
	return Viewport{
		Dpi:       dpi,
		ViewBox:   RectFromSize(viewBoxWidth, viewBoxHeight),
		Transform: Identity(),
	}
}

// WithUnits returns a viewport for resolving lengths in the given unit
// system. For ObjectBoundingBox the reference box becomes the unit square;
// the caller composes the bounding-box transform separately.
func (v Viewport) WithUnits(units CoordUnits) Viewport {
	if units == ObjectBoundingBox {
		v.ViewBox = RectFromSize(1, 1)
	}
	return v
}

// WithViewBox returns a viewport with a new reference box and an unchanged
// transform.
func (v Viewport) WithViewBox(width, height float64) Viewport {
	v.ViewBox = RectFromSize(width, height)
	return v
}

// WithExplicitTransform returns a viewport whose transform is replaced
// outright. The caller guarantees invertibility.
func (v Viewport) WithExplicitTransform(transform Matrix) Viewport {
	v.Transform = transform
	return v
}

// WithComposedTransform composes an element's transform onto the viewport.
// A non-invertible composition is refused so that broken transforms skip
// the element instead of propagating.
func (v Viewport) WithComposedTransform(transform Matrix) (Viewport, error) {
	composed := v.Transform.PreTransform(transform)
	if !composed.IsInvertible() {
		return Viewport{}, fmt.Errorf("composing element transform: %w", ErrInvalidTransform)
	}
	v.Transform = composed
	return v, nil
}
