package surface

import (
	"fmt"

	"github.com/gogpu/svgr/internal/parallel"
)

// Horizontal and Vertical are the type-level direction tags for BoxBlur.
// Selecting the axis at the type level lets the per-pixel loop specialize
// without a branch in the hot path.
type (
	Horizontal struct{}
	Vertical   struct{}
)

// BlurDirection constrains the direction tag of a box blur.
type BlurDirection interface {
	Horizontal | Vertical
}

// BoxBlur performs a horizontal or vertical box blur into a new surface.
//
// The target parameter determines the position of the kernel relative to
// each pixel of the image. The value 0 indicates that the first pixel of
// the kernel corresponds to the current pixel, and the rest of the kernel
// is to the right or bottom of the pixel. The value kernelSize/2 centers a
// kernel with an odd size.
//
// Panics if kernelSize is 0 or if target >= kernelSize.
func BoxBlur[D BlurDirection](s *Shared, bounds IRect, kernelSize, target int) *Shared {
	out := New(s.width, s.height, s.typ)
	boxBlurLoop[D](s, out, bounds, kernelSize, target, 0)
	return out.Share()
}

// boxBlurLoop runs the blur into an existing surface, fanning the
// independent rows (or columns) of the image out across workers. Each line
// owns a disjoint slice of the output, so the result is identical for any
// worker count.
//
// Since all weights of a box kernel are equal, each step along the main
// axis updates a running sum by subtracting the oldest pixel and adding
// the newest one instead of recomputing the whole window.
func boxBlurLoop[D BlurDirection](s *Shared, out *Exclusive, bounds IRect, kernelSize, target, workers int) {
	if kernelSize == 0 {
		panic("box blur kernel size must be positive")
	}
	if target >= kernelSize {
		panic(fmt.Sprintf("box blur target %d out of range for kernel size %d", target, kernelSize))
	}

	var d D
	_, vertical := any(d).(Vertical)

	alphaOnly := s.IsAlphaOnly()

	// Shift is target into the opposite direction.
	shift := kernelSize - target

	kernelSizeF := float64(kernelSize)
	compute := func(x uint32) uint8 {
		return uint8(float64(x)/kernelSizeF + 0.5)
	}

	// The main axis is the axis along which the blurring happens; the
	// other axis is the outer, parallel loop.
	var mainMin, mainMax, otherMin, otherMax int
	if vertical {
		mainMin, mainMax = bounds.Y0, bounds.Y1
		otherMin, otherMax = bounds.X0, bounds.X1
	} else {
		mainMin, mainMax = bounds.X0, bounds.X1
		otherMin, otherMax = bounds.Y0, bounds.Y1
	}

	pixel := func(i, j int) Pixel {
		if vertical {
			return s.GetPixel(i, j)
		}
		return s.GetPixel(j, i)
	}

	parallel.ForEach(otherMax-otherMin, workers, func(line int) {
		i := otherMin + line

		setPixel := func(j int, p Pixel) {
			if vertical {
				out.SetPixel(i, j, p)
			} else {
				out.SetPixel(j, i, p)
			}
		}

		var sumR, sumG, sumB, sumA uint32

		// The whole window is summed only for the first pixel; values
		// outside bounds are transparent, so the loop starts at the first
		// pixel in bounds.
		for j := mainMin; j < min(mainMax, mainMin+shift); j++ {
			p := pixel(i, j)
			if !alphaOnly {
				sumR += uint32(p.R)
				sumG += uint32(p.G)
				sumB += uint32(p.B)
			}
			sumA += uint32(p.A)
		}

		setPixel(mainMin, Pixel{
			R: compute(sumR),
			G: compute(sumG),
			B: compute(sumB),
			A: compute(sumA),
		})

		// j - target - 1 >= mainMin  =>  j >= mainMin + target + 1
		startSubtractingAt := mainMin + target + 1

		// j + shift - 1 < mainMax  =>  j < mainMax - shift + 1
		stopAddingAt := mainMax - shift + 1

		for j := mainMin + 1; j < mainMax; j++ {
			if j >= startSubtractingAt {
				old := pixel(i, j-target-1)
				if !alphaOnly {
					sumR -= uint32(old.R)
					sumG -= uint32(old.G)
					sumB -= uint32(old.B)
				}
				sumA -= uint32(old.A)
			}

			if j < stopAddingAt {
				next := pixel(i, j+shift-1)
				if !alphaOnly {
					sumR += uint32(next.R)
					sumG += uint32(next.G)
					sumB += uint32(next.B)
				}
				sumA += uint32(next.A)
			}

			setPixel(j, Pixel{
				R: compute(sumR),
				G: compute(sumG),
				B: compute(sumB),
				A: compute(sumA),
			})
		}
	})
}
