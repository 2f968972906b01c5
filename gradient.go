package svgr

import (
	"math"
	"sort"

	"github.com/chewxy/math32"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops sorts color stops by offset.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// srgbToLinearF32 converts one sRGB channel to linear light.
func srgbToLinearF32(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGBF32 converts one linear channel back to sRGB.
func linearToSRGBF32(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math32.Pow(c, 1.0/2.4) - 0.055
}

// interpolateColorLinear performs linear interpolation between two colors
// in linear sRGB space. This produces perceptually correct color blending.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	t32 := float32(t)
	lerp := func(a, b float64) float64 {
		la := srgbToLinearF32(float32(a))
		lb := srgbToLinearF32(float32(b))
		return float64(linearToSRGBF32(la + t32*(lb-la)))
	}
	return RGBA{
		R: lerp(c1.R, c2.R),
		G: lerp(c1.G, c2.G),
		B: lerp(c1.B, c2.B),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// colorAtOffset returns the interpolated color at a given offset.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}

// firstStopColor returns the color of the lowest-offset stop, or
// Transparent if there are no stops.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}

// LinearGradient is a linear color transition between two points in
// gradient space.
type LinearGradient struct {
	Start  Point
	End    Point
	Stops  []ColorStop
	Extend ExtendMode

	// Units selects the coordinate system the gradient geometry lives in.
	Units CoordUnits
	// Transform is an extra gradient-space transform.
	Transform Matrix
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1)
// in user-space units.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start:     Pt(x0, y0),
		End:       Pt(x1, y1),
		Extend:    ExtendPad,
		Transform: Identity(),
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
func (g *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	g.Extend = mode
	return g
}

func (*LinearGradient) paintMarker() {}

func (g *LinearGradient) paintUnits() CoordUnits { return g.Units }
func (g *LinearGradient) paintTransform() Matrix { return g.Transform }

// ColorAt returns the color at a gradient-space point.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project the point onto the gradient line.
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}

// RadialGradient is a radial color transition. Colors radiate from a
// focal point within the circle defined by Center and EndRadius.
type RadialGradient struct {
	Center      Point
	Focus       Point
	StartRadius float64
	EndRadius   float64
	Stops       []ColorStop
	Extend      ExtendMode

	Units     CoordUnits
	Transform Matrix
}

// NewRadialGradient creates a radial gradient around (cx, cy). Focus
// defaults to the center.
func NewRadialGradient(cx, cy, startRadius, endRadius float64) *RadialGradient {
	center := Pt(cx, cy)
	return &RadialGradient{
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Extend:      ExtendPad,
		Transform:   Identity(),
	}
}

// SetFocus sets the focal point of the gradient.
func (g *RadialGradient) SetFocus(fx, fy float64) *RadialGradient {
	g.Focus = Pt(fx, fy)
	return g
}

// AddColorStop adds a color stop at the specified offset.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.Extend = mode
	return g
}

func (*RadialGradient) paintMarker() {}

func (g *RadialGradient) paintUnits() CoordUnits { return g.Units }
func (g *RadialGradient) paintTransform() Matrix { return g.Transform }

// ColorAt returns the color at a gradient-space point.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if g.EndRadius == g.StartRadius {
		return firstStopColor(g.Stops)
	}
	return colorAtOffset(g.Stops, g.computeT(x, y), g.Extend)
}

func (g *RadialGradient) computeT(x, y float64) float64 {
	if g.Focus == g.Center {
		dx := x - g.Center.X
		dy := y - g.Center.Y
		return (math.Sqrt(dx*dx+dy*dy) - g.StartRadius) / (g.EndRadius - g.StartRadius)
	}
	return g.computeTFocal(x, y)
}

// computeTFocal handles focus != center by intersecting the ray from
// the focus through the point with the gradient circle.
func (g *RadialGradient) computeTFocal(x, y float64) float64 {
	dx := x - g.Focus.X
	dy := y - g.Focus.Y
	fx := g.Center.X - g.Focus.X
	fy := g.Center.Y - g.Focus.Y

	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.EndRadius*g.EndRadius
	if a == 0 {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}
