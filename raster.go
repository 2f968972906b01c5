package svgr

import (
	"math"
	"sort"

	"github.com/gogpu/svgr/surface"
)

// edge is a non-horizontal line segment prepared for scanline
// conversion, normalized so yMin <= yMax with the original direction
// kept in winding.
type edge struct {
	yMin, yMax float64
	xAtYMin    float64
	dxdy       float64
	winding    int8
}

const rasterEpsilon = 1e-9

func (e *edge) xAt(y float64) float64 {
	return e.xAtYMin + (y-e.yMin)*e.dxdy
}

// addEdge appends the segment (x0,y0)-(x1,y1) to dst, skipping
// horizontal segments.
func addEdge(dst []edge, x0, y0, x1, y1 float64) []edge {
	var winding int8 = 1
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		winding = -1
	}
	dy := y1 - y0
	if dy < rasterEpsilon {
		return dst
	}
	return append(dst, edge{
		yMin:    y0,
		yMax:    y1,
		xAtYMin: x0,
		dxdy:    (x1 - x0) / dy,
		winding: winding,
	})
}

// coverageBuffer holds antialiased fill coverage for a pixel region.
type coverageBuffer struct {
	bounds surface.IRect
	cov    []float32 // one value per pixel, row-major within bounds
}

func newCoverageBuffer(bounds surface.IRect) *coverageBuffer {
	return &coverageBuffer{
		bounds: bounds,
		cov:    make([]float32, bounds.Width()*bounds.Height()),
	}
}

func (c *coverageBuffer) at(x, y int) float32 {
	return c.cov[(y-c.bounds.Y0)*c.bounds.Width()+(x-c.bounds.X0)]
}

// subsamples is the number of scanlines sampled per pixel row.
const subsamples = 4

// rasterize fills the closed polylines into a coverage buffer clipped
// to bounds. Coverage is exact horizontally and supersampled
// vertically.
func rasterize(subpaths [][]Point, bounds surface.IRect, rule FillRule) *coverageBuffer {
	buf := newCoverageBuffer(bounds)
	if bounds.IsEmpty() {
		return buf
	}

	var edges []edge
	for _, sub := range subpaths {
		for i := 1; i < len(sub); i++ {
			edges = addEdge(edges, sub[i-1].X, sub[i-1].Y, sub[i].X, sub[i].Y)
		}
		// Close the subpath if the polyline does not return to its start.
		if n := len(sub); n > 1 && (sub[0] != sub[n-1]) {
			edges = addEdge(edges, sub[n-1].X, sub[n-1].Y, sub[0].X, sub[0].Y)
		}
	}
	if len(edges) == 0 {
		return buf
	}

	type crossing struct {
		x       float64
		winding int8
	}
	crossings := make([]crossing, 0, 16)

	width := bounds.Width()
	const weight = 1.0 / subsamples

	for py := bounds.Y0; py < bounds.Y1; py++ {
		row := buf.cov[(py-bounds.Y0)*width:]
		for s := 0; s < subsamples; s++ {
			y := float64(py) + (float64(s)+0.5)/subsamples

			crossings = crossings[:0]
			for i := range edges {
				e := &edges[i]
				if y < e.yMin || y >= e.yMax {
					continue
				}
				crossings = append(crossings, crossing{x: e.xAt(y), winding: e.winding})
			}
			if len(crossings) == 0 {
				continue
			}
			sort.Slice(crossings, func(i, j int) bool {
				return crossings[i].x < crossings[j].x
			})

			// Walk crossings left to right accumulating winding and
			// painting the inside spans.
			wind := 0
			spanStart := 0.0
			inside := false
			for _, cr := range crossings {
				prev := inside
				wind += int(cr.winding)
				switch rule {
				case FillEvenOdd:
					inside = wind%2 != 0
				default:
					inside = wind != 0
				}
				if !prev && inside {
					spanStart = cr.x
				} else if prev && !inside {
					paintSpan(row, bounds.X0, bounds.X1, spanStart, cr.x, weight)
				}
			}
		}
	}
	return buf
}

// paintSpan adds weight*overlap coverage to every pixel the horizontal
// span [x0, x1) touches, clipped to [clipX0, clipX1).
func paintSpan(row []float32, clipX0, clipX1 int, x0, x1, weight float64) {
	if x1 <= x0 {
		return
	}
	if x0 < float64(clipX0) {
		x0 = float64(clipX0)
	}
	if x1 > float64(clipX1) {
		x1 = float64(clipX1)
	}
	if x1 <= x0 {
		return
	}

	first := int(math.Floor(x0))
	last := int(math.Ceil(x1)) - 1
	if first == last {
		row[first-clipX0] += float32(weight * (x1 - x0))
		return
	}

	row[first-clipX0] += float32(weight * (float64(first+1) - x0))
	for px := first + 1; px < last; px++ {
		row[px-clipX0] += float32(weight)
	}
	row[last-clipX0] += float32(weight * (x1 - float64(last)))
}

// coverageByte converts accumulated coverage to an 8-bit value.
func coverageByte(c float32) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}
