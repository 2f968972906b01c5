package svgr

import "github.com/gogpu/svgr/surface"

// MaskType selects how mask content pixels become mask coverage.
type MaskType int

const (
	// MaskLuminance uses the luminance of the mask content.
	MaskLuminance MaskType = iota
	// MaskAlpha uses the alpha channel of the mask content.
	MaskAlpha
)

// StackingContext bundles everything compositing needs to know about one
// drawable element: how its subtree transforms, whether it must be
// isolated, and how the isolated result folds back into the parent. It is
// built once from the element's computed style and read-only afterwards.
type StackingContext struct {
	// Transform is the element's own transform, composed onto the
	// current viewport before anything is drawn.
	Transform Matrix

	// Opacity in [0, 1]; values below 1 force isolation.
	Opacity float64

	// BlendMode is the compositing operator against the backdrop.
	// Anything other than surface.OpOver forces isolation.
	BlendMode surface.Operator

	// ClipUser references a clip path expressed in the element's own
	// coordinate system. Applied directly to the live target; does not
	// force isolation.
	ClipUser NodeID

	// ClipObject references a clip path in objectBoundingBox units. It
	// needs the element's bounding box, so it is deferred until after
	// the subtree has been drawn, which forces isolation.
	ClipObject NodeID

	// Mask references a mask definition; forces isolation.
	Mask NodeID

	// Filters is the resolved, ordered filter chain; non-empty forces
	// isolation.
	Filters []FilterValue

	// LinkTarget annotates the element's extent as a hyperlink region on
	// link-aware outputs. Pure metadata; never affects pixels.
	LinkTarget string
}

// NewStackingContext returns a stacking context that draws its content
// unchanged: identity transform, full opacity, normal blending, and no
// clip, mask, filter or link.
func NewStackingContext() StackingContext {
	return StackingContext{
		Transform: Identity(),
		Opacity:   1,
		BlendMode: surface.OpOver,
	}
}

// shouldIsolate reports whether the element's subtree must be rendered
// into a temporary surface so that opacity, blending, filters, masking or
// an object-space clip apply to the subtree as a whole.
func (sc *StackingContext) shouldIsolate() bool {
	return sc.Opacity < 1 ||
		len(sc.Filters) > 0 ||
		sc.Mask != 0 ||
		sc.BlendMode != surface.OpOver ||
		sc.ClipObject != 0
}
