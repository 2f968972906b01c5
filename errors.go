package svgr

import (
	"errors"
	"fmt"
)

// Rendering errors fall into two families. Recoverable per-element errors
// (cycles, limits, bad transforms) are caught inside the compositor: the
// offending element is logged and degraded to an empty bounding box while
// the rest of the document keeps rendering. Backend errors abort the
// current subtree and propagate to the caller.
var (
	// ErrCircularReference reports that resolving a node reference walked
	// back into a node that is currently being acquired.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrMaxReferencesExceeded reports that the per-render cap on resolved
	// node references was hit. It bounds documents that amplify work
	// through deeply chained references.
	ErrMaxReferencesExceeded = errors.New("maximum number of referenced elements exceeded")

	// ErrNestingDepthExceeded reports that stacking contexts were nested
	// deeper than the render allows.
	ErrNestingDepthExceeded = errors.New("maximum layer nesting depth exceeded")

	// ErrInvalidTransform reports a non-invertible transform. Inside the
	// compositor this degrades the current element only.
	ErrInvalidTransform = errors.New("transform is not invertible")

	// ErrNodeNotFound reports a reference to a node that does not exist in
	// the document.
	ErrNodeNotFound = errors.New("referenced node not found")

	// ErrZeroSize reports a zero-area viewport, clip or mask region.
	ErrZeroSize = errors.New("zero-sized region")

	// ErrInvalidParameter reports a filter primitive parameter outside
	// its valid range, such as a negative blur deviation.
	ErrInvalidParameter = errors.New("invalid filter parameter")

	// ErrSurfaceFinished reports a draw on a canvas after Finish.
	ErrSurfaceFinished = errors.New("surface already finished")
)

// FilterError wraps a failure while resolving or rendering a filter
// specification. The filter invoker catches it and degrades the whole
// chain to a pass-through.
type FilterError struct {
	// Primitive is the index of the failing specification in the chain.
	Primitive int
	Err       error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter primitive %d: %v", e.Primitive, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

// isRecoverable reports whether err should degrade a single element
// instead of aborting the render.
func isRecoverable(err error) bool {
	return errors.Is(err, ErrCircularReference) ||
		errors.Is(err, ErrMaxReferencesExceeded) ||
		errors.Is(err, ErrInvalidTransform) ||
		errors.Is(err, ErrNodeNotFound) ||
		errors.Is(err, ErrZeroSize) ||
		errors.Is(err, ErrInvalidParameter)
}
