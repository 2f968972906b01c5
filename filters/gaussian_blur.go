package filters

import (
	"fmt"
	"math"

	"github.com/gogpu/svgr"
	"github.com/gogpu/svgr/surface"
)

// maxKernelSize caps blur kernels; larger deviations saturate here
// instead of growing without bound.
const maxKernelSize = 500

// GaussianBlur blurs its input with an approximated gaussian. The
// standard deviations are in user units and transform through the
// filter's coordinate mapping before use.
//
// Deviations of at least 2.0 use three successive box blurs, which
// converges on a gaussian; smaller deviations use an exact sampled
// kernel.
type GaussianBlur struct {
	StdDeviationX float64
	StdDeviationY float64
}

func (g *GaussianBlur) Render(ctx *svgr.FilterContext, input *surface.Shared) (*surface.Shared, error) {
	if g.StdDeviationX < 0 || g.StdDeviationY < 0 {
		return nil, fmt.Errorf("standard deviation (%v, %v): %w",
			g.StdDeviationX, g.StdDeviationY, svgr.ErrInvalidParameter)
	}

	scaled := ctx.Paffine.TransformVector(svgr.Pt(g.StdDeviationX, g.StdDeviationY))
	sx := math.Abs(scaled.X)
	sy := math.Abs(scaled.Y)
	if sx <= 0 && sy <= 0 {
		return input, nil
	}

	out := input
	if sx > 0 {
		out = blurAxis(out, ctx.Bounds, sx, false)
	}
	if sy > 0 {
		out = blurAxis(out, ctx.Bounds, sy, true)
	}
	return out, nil
}

// boxBlurKernelSize returns the box kernel width that approximates a
// gaussian of the given deviation when applied three times.
func boxBlurKernelSize(sigma float64) int {
	d := int(math.Floor(sigma*3.0*math.Sqrt(2.0*math.Pi)/4.0 + 0.5))
	if d > maxKernelSize {
		d = maxKernelSize
	}
	return d
}

// blurAxis blurs one direction of the surface.
func blurAxis(s *surface.Shared, bounds surface.IRect, sigma float64, vertical bool) *surface.Shared {
	if sigma >= 2.0 {
		d := boxBlurKernelSize(sigma)
		if d == 0 {
			return s
		}
		return threeBoxBlurs(s, bounds, d, vertical)
	}
	kernel, targetX, targetY := gaussianKernel(sigma, vertical)
	if kernel == nil {
		return s
	}
	return surface.Convolve(s, bounds, targetX, targetY, kernel, surface.EdgeNone)
}

// threeBoxBlurs applies the box blur sequence whose composite impulse
// response approximates a gaussian. Odd kernel sizes center naturally;
// even sizes shift the target between passes to stay centered.
func threeBoxBlurs(s *surface.Shared, bounds surface.IRect, d int, vertical bool) *surface.Shared {
	box := func(in *surface.Shared, kernelSize, target int) *surface.Shared {
		if vertical {
			return surface.BoxBlur[surface.Vertical](in, bounds, kernelSize, target)
		}
		return surface.BoxBlur[surface.Horizontal](in, bounds, kernelSize, target)
	}

	if d%2 == 1 {
		out := box(s, d, d/2)
		out = box(out, d, d/2)
		return box(out, d, d/2)
	}
	out := box(s, d, d/2)
	out = box(out, d, d/2-1)
	return box(out, d+1, (d+1)/2)
}

// gaussianKernel builds a one-dimensional sampled gaussian, integrating
// the density over each pixel's span. Returns nil for a degenerate
// deviation.
func gaussianKernel(sigma float64, vertical bool) (*surface.Kernel, int, int) {
	if sigma <= 0 {
		return nil, 0, 0
	}

	clamped := math.Min(sigma, float64(maxKernelSize/2)/3.0)
	radius := int(clamped*3.0 + 0.5)
	if radius > (maxKernelSize-1)/2 {
		radius = (maxKernelSize - 1) / 2
	}
	diameter := 2*radius + 1

	// Integrate the density over each pixel with 50 interior samples.
	weights := make([]float64, diameter)
	sum := 0.0
	for i := 0; i <= radius; i++ {
		acc := 0.0
		for j := 0; j <= 50; j++ {
			x := float64(i) - 0.5 + float64(j)/50.0
			acc += math.Exp(-x * x / (2 * sigma * sigma))
		}
		w := acc / 51.0
		weights[radius+i] = w
		weights[radius-i] = w
		sum += w
		if i > 0 {
			sum += w
		}
	}
	for i := range weights {
		weights[i] /= sum
	}

	if vertical {
		k := &surface.Kernel{Rows: diameter, Cols: 1, Data: weights}
		return k, 0, radius
	}
	k := &surface.Kernel{Rows: 1, Cols: diameter, Data: weights}
	return k, radius, 0
}
