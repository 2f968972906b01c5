package svgr

// CompositingAffines is the set of transforms involved in compositing a
// temporary surface back onto its parent.
//
// A temporary surface is allocated in device pixels, so the device scaling
// baked into the initial transform must be factored out when drawing into
// it and re-applied exactly once when compositing it back. That factoring
// happens only for the outermost temporary surface of a render; nested
// temporary surfaces draw into an already device-scaled parent, so their
// derived transforms collapse to the current transform and the identity.
type CompositingAffines struct {
	// OutsideTemporarySurface is the transform in effect on the surface
	// the temporary surface will be composited onto.
	OutsideTemporarySurface Matrix

	// Initial is the transform the render started with, unchanged.
	Initial Matrix

	// ForTemporarySurface is the transform to draw with inside the
	// temporary surface.
	ForTemporarySurface Matrix

	// Compositing is the transform under which the temporary surface is
	// painted back onto its parent.
	Compositing Matrix

	// ForSnapshot undoes Compositing; used when taking a snapshot of the
	// live surface stack.
	ForSnapshot Matrix
}

// ComputeAffines derives the compositing transforms from the transform in
// effect when the temporary surface is opened, the render's initial
// transform, and the current temporary-surface nesting depth. It is a pure
// function; the result lives only for one compositing operation.
func ComputeAffines(current, initial Matrix, nestingDepth int) CompositingAffines {
	topmost := nestingDepth == 0

	initialInverse := initial.Invert()

	var outside Matrix
	if topmost {
		outside = current
	} else {
		outside = current.PostTransform(initialInverse)
	}

	scale := initial.TransformVector(Point{X: 1, Y: 1})

	var forTemporary Matrix
	if topmost {
		forTemporary = current.PostTransform(initialInverse).PostScale(scale.X, scale.Y)
	} else {
		forTemporary = current
	}

	var compositing Matrix
	if topmost {
		compositing = Scale(1/scale.X, 1/scale.Y).PostTransform(initial)
	} else {
		compositing = Identity()
	}

	return CompositingAffines{
		OutsideTemporarySurface: outside,
		Initial:                 initial,
		ForTemporarySurface:     forTemporary,
		Compositing:             compositing,
		ForSnapshot:             compositing.Invert(),
	}
}
