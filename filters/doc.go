// Package filters provides the built-in filter primitives: gaussian
// blur, offset, flood, tile, and color matrix. Primitives consume and
// produce immutable surfaces in linear RGB and never mutate their
// input.
package filters
