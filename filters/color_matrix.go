package filters

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/svgr"
	"github.com/gogpu/svgr/surface"
)

// ColorMatrix applies a 4x5 matrix to the straight (unmultiplied)
// RGBA of every pixel. Rows map to output channels; the fifth column
// is a constant offset.
type ColorMatrix struct {
	Matrix [20]float32
}

// SaturateMatrix builds the color matrix for a saturation adjustment,
// with s = 1 leaving colors unchanged and s = 0 producing grayscale.
func SaturateMatrix(s float32) [20]float32 {
	return [20]float32{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

func (c *ColorMatrix) Render(ctx *svgr.FilterContext, input *surface.Shared) (*surface.Shared, error) {
	out := surface.New(input.Width(), input.Height(), input.Type())
	m := &c.Matrix

	bounds := ctx.Bounds.Intersect(input.Bounds())
	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			p := input.GetPixel(x, y).Unpremultiply()
			r := float32(p.R) / 255
			g := float32(p.G) / 255
			b := float32(p.B) / 255
			a := float32(p.A) / 255

			or := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
			og := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
			ob := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
			oa := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

			q := surface.Pixel{
				R: unitToByte(or),
				G: unitToByte(og),
				B: unitToByte(ob),
				A: unitToByte(oa),
			}
			out.SetPixel(x, y, q.Premultiply())
		}
	}
	return out.Share(), nil
}

// unitToByte clamps a unit-range channel and quantizes it to a byte.
func unitToByte(v float32) uint8 {
	v = math32.Max(0, math32.Min(1, v))
	return uint8(v*255 + 0.5)
}
