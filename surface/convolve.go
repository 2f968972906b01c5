package surface

// EdgeMode specifies how pixels outside the input bounds are sampled
// during convolution.
type EdgeMode int

const (
	// EdgeNone treats outside pixels as transparent black.
	EdgeNone EdgeMode = iota
	// EdgeDuplicate clamps sampling to the nearest in-bounds pixel.
	EdgeDuplicate
	// EdgeWrap tiles the bounds.
	EdgeWrap
)

// Kernel is a dense convolution kernel in row-major order.
type Kernel struct {
	Rows, Cols int
	Data       []float64
}

// At returns the kernel weight at the given row and column.
func (k *Kernel) At(row, col int) float64 {
	return k.Data[row*k.Cols+col]
}

// samplePixel reads (x, y), resolving out-of-bounds coordinates according
// to the edge mode.
func (s *Shared) samplePixel(bounds IRect, x, y int, edgeMode EdgeMode) Pixel {
	if bounds.Contains(x, y) {
		return s.GetPixel(x, y)
	}

	switch edgeMode {
	case EdgeDuplicate:
		x = min(max(x, bounds.X0), bounds.X1-1)
		y = min(max(y, bounds.Y0), bounds.Y1-1)
		return s.GetPixel(x, y)
	case EdgeWrap:
		wrap := func(v, lo, n int) int {
			v = (v - lo) % n
			if v < 0 {
				v += n
			}
			return lo + v
		}
		x = wrap(x, bounds.X0, bounds.Width())
		y = wrap(y, bounds.Y0, bounds.Height())
		return s.GetPixel(x, y)
	default:
		return Pixel{}
	}
}

// Convolve applies the kernel to the surface within bounds. The kernel is
// applied rotated by 180 degrees, matching SVG convolution semantics, and
// target fixes which kernel cell lands on the output pixel. Channels clamp
// to [0, 255] with round-half-up. Alpha-only surfaces skip the color sums.
func Convolve(s *Shared, bounds IRect, targetX, targetY int, kernel *Kernel, edgeMode EdgeMode) *Shared {
	if kernel.Rows < 1 || kernel.Cols < 1 {
		panic("convolution kernel must have at least one row and column")
	}

	out := New(s.width, s.height, s.typ)
	alphaOnly := s.IsAlphaOnly()

	convert := func(v float64) uint8 {
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}

	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			kx0 := x - targetX
			ky0 := y - targetY
			kx1 := kx0 + kernel.Cols
			ky1 := ky0 + kernel.Rows

			var r, g, b, a float64
			for sy := ky0; sy < ky1; sy++ {
				for sx := kx0; sx < kx1; sx++ {
					p := s.samplePixel(bounds, sx, sy, edgeMode)
					factor := kernel.At(ky1-sy-1, kx1-sx-1)
					if !alphaOnly {
						r += float64(p.R) * factor
						g += float64(p.G) * factor
						b += float64(p.B) * factor
					}
					a += float64(p.A) * factor
				}
			}

			if alphaOnly {
				out.SetPixel(x, y, Pixel{A: convert(a)})
			} else {
				out.SetPixel(x, y, Pixel{
					R: convert(r),
					G: convert(g),
					B: convert(b),
					A: convert(a),
				})
			}
		}
	}

	return out.Share()
}
