package svgr

// Processing limits that bound the work a hostile document can request.

// maxReferencedElements caps how many node references are resolved during
// one render. Deeply chained <use> or <pattern> references can otherwise
// amplify the number of rendered objects exponentially.
const maxReferencedElements = 500_000

// maxLayerNestingDepth caps stacking-context nesting during rendering so
// that extremely deep layer trees cannot exhaust the stack.
const maxLayerNestingDepth = 50
