package surface

import "math"

// Operator selects how a source pixel combines with a destination pixel.
// The Porter-Duff set is followed by the separable and non-separable CSS
// blend modes. All per-pixel math runs on premultiplied bytes.
type Operator int

const (
	OpClear Operator = iota
	OpSource
	OpDest
	OpOver
	OpDestOver
	OpIn
	OpDestIn
	OpOut
	OpDestOut
	OpAtop
	OpDestAtop
	OpXor
	OpAdd

	OpMultiply
	OpScreen
	OpOverlay
	OpDarken
	OpLighten
	OpColorDodge
	OpColorBurn
	OpHardLight
	OpSoftLight
	OpDifference
	OpExclusion

	OpHue
	OpSaturation
	OpColor
	OpLuminosity
)

// pixelOp combines a premultiplied source pixel with a premultiplied
// destination pixel.
type pixelOp func(s, d Pixel) Pixel

// operatorFunc returns the per-pixel function for the operator, falling
// back to source-over for unknown values.
func operatorFunc(op Operator) pixelOp {
	switch op {
	case OpClear:
		return func(s, d Pixel) Pixel { return Pixel{} }
	case OpSource:
		return func(s, d Pixel) Pixel { return s }
	case OpDest:
		return func(s, d Pixel) Pixel { return d }
	case OpOver:
		return opOver
	case OpDestOver:
		return func(s, d Pixel) Pixel { return opOver(d, s) }
	case OpIn:
		return opIn
	case OpDestIn:
		return func(s, d Pixel) Pixel { return opIn(d, s) }
	case OpOut:
		return opOut
	case OpDestOut:
		return func(s, d Pixel) Pixel { return opOut(d, s) }
	case OpAtop:
		return opAtop
	case OpDestAtop:
		return func(s, d Pixel) Pixel { return opAtop(d, s) }
	case OpXor:
		return opXor
	case OpAdd:
		return opAdd

	case OpMultiply:
		return separable(func(s, d uint8) uint8 { return mulDiv255(s, d) })
	case OpScreen:
		return separable(blendScreen)
	case OpOverlay:
		return separable(func(s, d uint8) uint8 { return blendHardLight(d, s) })
	case OpDarken:
		return separable(func(s, d uint8) uint8 { return min(s, d) })
	case OpLighten:
		return separable(func(s, d uint8) uint8 { return max(s, d) })
	case OpColorDodge:
		return separable(blendColorDodge)
	case OpColorBurn:
		return separable(blendColorBurn)
	case OpHardLight:
		return separable(blendHardLight)
	case OpSoftLight:
		return separable(blendSoftLight)
	case OpDifference:
		return separable(func(s, d uint8) uint8 {
			if s > d {
				return s - d
			}
			return d - s
		})
	case OpExclusion:
		return separable(blendExclusion)

	case OpHue, OpSaturation, OpColor, OpLuminosity:
		return nonSeparable(op)

	default:
		return opOver
	}
}

// Apply combines a premultiplied source pixel with a premultiplied
// destination pixel using the operator.
func (op Operator) Apply(src, dst Pixel) Pixel {
	return operatorFunc(op)(src, dst)
}

// addClamp255 adds two bytes, saturating at 255.
func addClamp255(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// opOver: S + D*(1 - Sa)
func opOver(s, d Pixel) Pixel {
	invSa := 255 - s.A
	return Pixel{
		R: addClamp255(s.R, mulDiv255(d.R, invSa)),
		G: addClamp255(s.G, mulDiv255(d.G, invSa)),
		B: addClamp255(s.B, mulDiv255(d.B, invSa)),
		A: addClamp255(s.A, mulDiv255(d.A, invSa)),
	}
}

// opIn: S*Da
func opIn(s, d Pixel) Pixel {
	return Pixel{
		R: mulDiv255(s.R, d.A),
		G: mulDiv255(s.G, d.A),
		B: mulDiv255(s.B, d.A),
		A: mulDiv255(s.A, d.A),
	}
}

// opOut: S*(1 - Da)
func opOut(s, d Pixel) Pixel {
	invDa := 255 - d.A
	return Pixel{
		R: mulDiv255(s.R, invDa),
		G: mulDiv255(s.G, invDa),
		B: mulDiv255(s.B, invDa),
		A: mulDiv255(s.A, invDa),
	}
}

// opAtop: S*Da + D*(1 - Sa), alpha stays Da
func opAtop(s, d Pixel) Pixel {
	invSa := 255 - s.A
	return Pixel{
		R: addClamp255(mulDiv255(s.R, d.A), mulDiv255(d.R, invSa)),
		G: addClamp255(mulDiv255(s.G, d.A), mulDiv255(d.G, invSa)),
		B: addClamp255(mulDiv255(s.B, d.A), mulDiv255(d.B, invSa)),
		A: d.A,
	}
}

// opXor: S*(1 - Da) + D*(1 - Sa)
func opXor(s, d Pixel) Pixel {
	invSa := 255 - s.A
	invDa := 255 - d.A
	return Pixel{
		R: addClamp255(mulDiv255(s.R, invDa), mulDiv255(d.R, invSa)),
		G: addClamp255(mulDiv255(s.G, invDa), mulDiv255(d.G, invSa)),
		B: addClamp255(mulDiv255(s.B, invDa), mulDiv255(d.B, invSa)),
		A: addClamp255(mulDiv255(s.A, invDa), mulDiv255(d.A, invSa)),
	}
}

// opAdd: S + D, saturating
func opAdd(s, d Pixel) Pixel {
	return Pixel{
		R: addClamp255(s.R, d.R),
		G: addClamp255(s.G, d.G),
		B: addClamp255(s.B, d.B),
		A: addClamp255(s.A, d.A),
	}
}

// separable builds a full compositing function from a per-channel blend
// of straight (unmultiplied) color values:
//
//	co = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Sc, Dc)
func separable(blendChan func(s, d uint8) uint8) pixelOp {
	return func(s, d Pixel) Pixel {
		if s.A == 0 {
			return d
		}
		if d.A == 0 {
			return s
		}

		su := s.Unpremultiply()
		du := d.Unpremultiply()

		invSa := 255 - s.A
		invDa := 255 - d.A
		saDa := mulDiv255(s.A, d.A)

		mix := func(sc, dc, bc uint8) uint8 {
			v := addClamp255(mulDiv255(dc, invSa), mulDiv255(sc, invDa))
			return addClamp255(v, mulDiv255(saDa, bc))
		}

		return Pixel{
			R: mix(s.R, d.R, blendChan(su.R, du.R)),
			G: mix(s.G, d.G, blendChan(su.G, du.G)),
			B: mix(s.B, d.B, blendChan(su.B, du.B)),
			A: addClamp255(s.A, mulDiv255(d.A, invSa)),
		}
	}
}

// blendScreen: Cb + Cs - Cb*Cs
func blendScreen(s, d uint8) uint8 {
	return addClamp255(s, d) - mulDiv255(s, d)
}

// blendHardLight: multiply or screen depending on the source value.
func blendHardLight(s, d uint8) uint8 {
	if s <= 127 {
		return mulDiv255(d, addClamp255(s, s))
	}
	return blendScreen(addClamp255(s, s)-255, d)
}

// blendColorDodge: Cb / (1 - Cs)
func blendColorDodge(s, d uint8) uint8 {
	if d == 0 {
		return 0
	}
	if s == 255 {
		return 255
	}
	v := uint32(d) * 255 / uint32(255-s)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// blendColorBurn: 1 - (1 - Cb) / Cs
func blendColorBurn(s, d uint8) uint8 {
	if d == 255 {
		return 255
	}
	if s == 0 {
		return 0
	}
	v := uint32(255-d) * 255 / uint32(s)
	if v > 255 {
		v = 255
	}
	return uint8(255 - v)
}

// blendSoftLight per the W3C compositing specification, evaluated in
// floating point for the D(Cb) term.
func blendSoftLight(s, d uint8) uint8 {
	sf := float64(s) / 255
	df := float64(d) / 255

	var out float64
	if sf <= 0.5 {
		out = df - (1-2*sf)*df*(1-df)
	} else {
		var dd float64
		if df <= 0.25 {
			dd = ((16*df-12)*df + 4) * df
		} else {
			dd = math.Sqrt(df)
		}
		out = df + (2*sf-1)*(dd-df)
	}
	return uint8(out*255 + 0.5)
}

// blendExclusion: Cb + Cs - 2*Cb*Cs
func blendExclusion(s, d uint8) uint8 {
	m := mulDiv255(s, d)
	return addClamp255(s, d) - addClamp255(m, m)
}
