package surface

// Non-separable blend modes (hue, saturation, color, luminosity). These
// operate on the whole RGB triplet of straight color values, so the math
// runs in float32 instead of bytes.

// lum returns the luminance of a color using BT.601 coefficients.
func lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// sat returns the saturation (max - min) of a color.
func sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor clips color components to [0, 1] while preserving luminance.
func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// setLum shifts a color to the target luminance, then clips.
func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

// setSat scales a color to the target saturation, preserving the relative
// ordering of its components.
func setSat(r, g, b, s float32) (float32, float32, float32) {
	minPtr, midPtr, maxPtr := sortRGB(&r, &g, &b)

	if *maxPtr > *minPtr {
		*midPtr = (*midPtr - *minPtr) * s / (*maxPtr - *minPtr)
		*maxPtr = s
	} else {
		*midPtr = 0
		*maxPtr = 0
	}
	*minPtr = 0

	return r, g, b
}

// sortRGB returns pointers to r, g, b ordered by value.
func sortRGB(r, g, b *float32) (minPtr, midPtr, maxPtr *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// nonSeparable builds the compositing function for one of the
// non-separable blend modes.
func nonSeparable(op Operator) pixelOp {
	blend := func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		switch op {
		case OpHue:
			r, g, b := setSat(sr, sg, sb, sat(dr, dg, db))
			return setLum(r, g, b, lum(dr, dg, db))
		case OpSaturation:
			r, g, b := setSat(dr, dg, db, sat(sr, sg, sb))
			return setLum(r, g, b, lum(dr, dg, db))
		case OpColor:
			return setLum(sr, sg, sb, lum(dr, dg, db))
		default: // OpLuminosity
			return setLum(dr, dg, db, lum(sr, sg, sb))
		}
	}

	return func(s, d Pixel) Pixel {
		if s.A == 0 {
			return d
		}
		if d.A == 0 {
			return s
		}

		su := s.Unpremultiply()
		du := d.Unpremultiply()

		br, bg, bb := blend(
			float32(su.R)/255, float32(su.G)/255, float32(su.B)/255,
			float32(du.R)/255, float32(du.G)/255, float32(du.B)/255,
		)

		toByte := func(v float32) uint8 {
			if v <= 0 {
				return 0
			}
			if v >= 1 {
				return 255
			}
			return uint8(v*255 + 0.5)
		}

		invSa := 255 - s.A
		invDa := 255 - d.A
		saDa := mulDiv255(s.A, d.A)

		mix := func(sc, dc, bc uint8) uint8 {
			v := addClamp255(mulDiv255(dc, invSa), mulDiv255(sc, invDa))
			return addClamp255(v, mulDiv255(saDa, bc))
		}

		return Pixel{
			R: mix(s.R, d.R, toByte(br)),
			G: mix(s.G, d.G, toByte(bg)),
			B: mix(s.B, d.B, toByte(bb)),
			A: addClamp255(s.A, mulDiv255(d.A, invSa)),
		}
	}
}
