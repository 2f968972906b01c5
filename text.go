package svgr

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// TextSpan is one run of text filled at a baseline origin. Shaping runs
// through HarfBuzz, so kerning and ligatures apply; the shaped glyph
// outlines then fill like any other path.
type TextSpan struct {
	// Face is the parsed font face. font.Face is not safe for
	// concurrent use; spans sharing a face must render sequentially.
	Face *font.Face

	// Size is the font size in user units.
	Size float64

	// Origin is the baseline start point.
	Origin Point

	// Text is the UTF-8 text to shape and fill.
	Text string

	// Fill is the paint for the glyphs. Nil fills black.
	Fill Paint
}

// drawText shapes and fills a text span. The glyph outlines combine
// into one path so overlapping glyphs fill without seams.
func (ctx *Context) drawText(span *TextSpan, viewport Viewport) (BoundingBox, error) {
	bbox := NewBoundingBox().WithTransform(viewport.Transform)
	if span == nil || span.Face == nil || span.Text == "" || span.Size <= 0 {
		return bbox, nil
	}

	path := ctx.shapeTextPath(span)
	if path.IsEmpty() {
		return bbox, nil
	}

	userRect := path.Bounds()
	bbox = bbox.WithRect(userRect).WithInkRect(userRect)

	fill := span.Fill
	if fill == nil {
		fill = SolidPaint(Black)
	}
	sample, err := ctx.paintSampler(fill, viewport, userRect)
	if err != nil {
		Logger().Warn("skipping text with unusable paint", "error", err)
		return bbox, nil
	}
	ctx.canvas().FillPath(path, FillNonZero, sample)
	return bbox, nil
}

// shapeTextPath runs HarfBuzz shaping and converts the positioned
// glyph outlines into a single user-space path.
func (ctx *Context) shapeTextPath(span *TextSpan) *Path {
	runes := []rune(span.Text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      span.Face,
		Size:      fixed.Int26_6(span.Size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)

	scale := span.Size / float64(span.Face.Upem())
	path := NewPath()

	penX := span.Origin.X
	penY := span.Origin.Y
	for _, g := range output.Glyphs {
		gx := penX + fixedToFloat(g.XOffset)
		gy := penY - fixedToFloat(g.YOffset)
		appendGlyphOutline(path, span.Face, g.GlyphID, scale, gx, gy)
		penX += fixedToFloat(g.XAdvance)
		penY += fixedToFloat(g.YAdvance)
	}
	return path
}

// appendGlyphOutline adds one glyph's outline to the path, scaled from
// font units and flipped to the y-down device convention.
func appendGlyphOutline(path *Path, face *font.Face, gid font.GID, scale, dx, dy float64) {
	data := face.GlyphData(gid)
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return
	}

	mapX := func(v float32) float64 { return dx + float64(v)*scale }
	mapY := func(v float32) float64 { return dy - float64(v)*scale }

	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			path.MoveTo(mapX(seg.Args[0].X), mapY(seg.Args[0].Y))
		case opentype.SegmentOpLineTo:
			path.LineTo(mapX(seg.Args[0].X), mapY(seg.Args[0].Y))
		case opentype.SegmentOpQuadTo:
			path.QuadraticTo(
				mapX(seg.Args[0].X), mapY(seg.Args[0].Y),
				mapX(seg.Args[1].X), mapY(seg.Args[1].Y),
			)
		case opentype.SegmentOpCubeTo:
			path.CubicTo(
				mapX(seg.Args[0].X), mapY(seg.Args[0].Y),
				mapX(seg.Args[1].X), mapY(seg.Args[1].Y),
				mapX(seg.Args[2].X), mapY(seg.Args[2].Y),
			)
		}
	}
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
