package svgr

import (
	"fmt"
	"math"
)

// Align selects how a view box anchors inside its viewport when the
// aspect ratios differ. The zero value is the centered default.
type Align int

const (
	AlignXMidYMid Align = iota
	AlignNone
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// fractions returns the alignment point along each axis: 0 anchors at
// the minimum edge, 0.5 centers, 1 anchors at the maximum edge.
func (a Align) fractions() (fx, fy float64) {
	switch a {
	case AlignXMinYMin:
		return 0, 0
	case AlignXMidYMin:
		return 0.5, 0
	case AlignXMaxYMin:
		return 1, 0
	case AlignXMinYMid:
		return 0, 0.5
	case AlignXMaxYMid:
		return 1, 0.5
	case AlignXMinYMax:
		return 0, 1
	case AlignXMidYMax:
		return 0.5, 1
	case AlignXMaxYMax:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

// FitMode selects whether an aligned view box is scaled to fit entirely
// inside the viewport or to cover it entirely.
type FitMode int

const (
	FitMeet FitMode = iota
	FitSlice
)

// AspectRatio pairs an alignment with a fit mode. The zero value is the
// centered meet behavior.
type AspectRatio struct {
	Align Align
	Fit   FitMode
}

// fit computes the scale and offset mapping a box of the given size onto
// a viewport of the given size. AlignNone stretches both axes
// independently; any other alignment scales uniformly and distributes
// the leftover space per the alignment point.
func (a AspectRatio) fit(boxWidth, boxHeight, vpWidth, vpHeight float64) (sx, sy, dx, dy float64) {
	sx = vpWidth / boxWidth
	sy = vpHeight / boxHeight
	if a.Align == AlignNone {
		return sx, sy, 0, 0
	}

	f := math.Min(sx, sy)
	if a.Fit == FitSlice {
		f = math.Max(sx, sy)
	}
	fx, fy := a.Align.fractions()
	dx = (vpWidth - boxWidth*f) * fx
	dy = (vpHeight - boxHeight*f) * fy
	return f, f, dx, dy
}

// Overflow controls whether content outside a layout viewport is cut
// away. The zero value clips, matching the default for elements that
// establish viewports.
type Overflow int

const (
	OverflowHidden Overflow = iota
	OverflowVisible
)

// LayoutViewport establishes a new viewport for a layer's content: a
// rectangle in the surrounding user space, optionally mapped from a view
// box through an aspect-ratio policy.
type LayoutViewport struct {
	// Rect is the viewport rectangle in the surrounding user space. An
	// empty rectangle disables rendering of the content.
	Rect Rect

	// ViewBox, when set, becomes the content's coordinate system. Nil
	// keeps the surrounding coordinates, shifted to the rectangle's
	// origin.
	ViewBox *Rect

	AspectRatio AspectRatio
	Overflow    Overflow
}

// transform returns the user-space transform from the new viewport's
// content coordinates to the surrounding coordinates. A view box with a
// negative size is invalid; a zero size disables rendering and reports
// ErrZeroSize so the caller can skip the element.
func (lv *LayoutViewport) transform() (Matrix, error) {
	t := Translate(lv.Rect.X0, lv.Rect.Y0)
	if lv.ViewBox == nil {
		return t, nil
	}

	vb := *lv.ViewBox
	if vb.Width() < 0 || vb.Height() < 0 {
		return Matrix{}, fmt.Errorf("negative view box size: %w", ErrInvalidTransform)
	}
	if vb.Width() == 0 || vb.Height() == 0 {
		return Matrix{}, fmt.Errorf("view box: %w", ErrZeroSize)
	}

	sx, sy, dx, dy := lv.AspectRatio.fit(vb.Width(), vb.Height(), lv.Rect.Width(), lv.Rect.Height())
	return t.
		PreTranslate(dx, dy).
		PreScale(sx, sy).
		PreTranslate(-vb.X0, -vb.Y0), nil
}
