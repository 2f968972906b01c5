package svgr

import (
	"github.com/gogpu/svgr/surface"
)

// FilterContext carries the fixed inputs of one filter invocation: the
// captured source graphic, the device-space region the filter may write,
// and the transforms needed to map filter parameters into device pixels.
type FilterContext struct {
	// Source is the rendered element the filter chain starts from.
	Source *surface.Shared

	// Bounds is the device-space region the filter operates on.
	Bounds surface.IRect

	// Paffine maps the element's user space to device pixels. Length
	// parameters such as blur deviations transform through it.
	Paffine Matrix

	// BBox is the element's bounding box in user space.
	BBox Rect
}

// FilterPrimitive is one step of a filter chain. It reads an input
// surface and produces a new one; it never mutates the input. Surfaces
// flowing through a chain are in linear RGB.
type FilterPrimitive interface {
	Render(ctx *FilterContext, input *surface.Shared) (*surface.Shared, error)
}

// FilterValue is one entry in an element's filter list: either an
// inline chain of primitives or a reference into the document.
type FilterValue interface {
	resolve(acquired *AcquiredNodes) ([]FilterPrimitive, error)
}

// FilterSpec is an inline filter chain.
type FilterSpec struct {
	Primitives []FilterPrimitive
}

func (f FilterSpec) resolve(acquired *AcquiredNodes) ([]FilterPrimitive, error) {
	return f.Primitives, nil
}

// FilterRef references a filter definition registered in the document.
type FilterRef struct {
	Node NodeID
}

func (f FilterRef) resolve(acquired *AcquiredNodes) ([]FilterPrimitive, error) {
	node, release, err := acquired.Acquire(f.Node)
	if err != nil {
		return nil, err
	}
	defer release()
	if node.Kind != RefFilter {
		return nil, ErrNodeNotFound
	}
	return []FilterPrimitive{node.Filter}, nil
}

// runFilters applies the element's filter list to a rendered surface.
//
// Resolution failures of any value in the list are recoverable: the
// whole chain is skipped and the input returned untouched. Primitive
// failures are wrapped with the primitive's position so callers can
// report which step failed.
//
// Primitives run in linear RGB; the result converts back to sRGB before
// it re-enters compositing.
func runFilters(ctx *FilterContext, values []FilterValue, acquired *AcquiredNodes, in *surface.Shared) (*surface.Shared, error) {
	var chain []FilterPrimitive
	for _, v := range values {
		prims, err := v.resolve(acquired)
		if err != nil {
			Logger().Warn("skipping unresolvable filter chain", "error", err)
			return in, nil
		}
		chain = append(chain, prims...)
	}
	if len(chain) == 0 {
		return in, nil
	}

	cur := in.ToLinearRGB(ctx.Bounds)
	for i, prim := range chain {
		next, err := prim.Render(ctx, cur)
		if err != nil {
			return nil, &FilterError{Primitive: i, Err: err}
		}
		cur = next
	}
	return cur.ToSRGB(ctx.Bounds), nil
}
