package svgr

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/svgr/surface"
)

// LinkRegion is a hyperlink annotation covering a device-space area.
// Regions never affect pixels; link-aware outputs read them back after
// rendering.
type LinkRegion struct {
	URI  string
	Rect Rect
}

// canvasState is one entry of the canvas save stack.
type canvasState struct {
	transform Matrix
	// clip is full-canvas coverage, one byte per pixel; nil means
	// unclipped.
	clip []uint8
}

// Canvas is a software render target: a writable surface plus a stack of
// transform and clip state, the primitive fill operation, and surface
// compositing. All drawing is antialiased and premultiplied.
type Canvas struct {
	target        *surface.Exclusive
	width, height int
	states        []canvasState

	links        []LinkRegion
	openLinkURI  string
	openLinkRect Rect
	openLinkSet  bool
	linkOpen     bool

	finished bool
}

// NewCanvas creates a canvas of the given pixel size backed by an sRGB
// surface cleared to transparent.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroSize
	}
	return &Canvas{
		target: surface.New(width, height, surface.TypeSRGB),
		width:  width,
		height: height,
		states: []canvasState{{transform: Identity()}},
	}, nil
}

func (c *Canvas) checkLive() {
	if c.finished {
		panic(ErrSurfaceFinished)
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) state() *canvasState {
	return &c.states[len(c.states)-1]
}

// Save pushes a copy of the current transform and clip state.
func (c *Canvas) Save() {
	c.states = append(c.states, *c.state())
}

// Restore pops the most recent saved state. Restoring past the initial
// state panics.
func (c *Canvas) Restore() {
	if len(c.states) == 1 {
		panic("canvas restore without matching save")
	}
	c.states = c.states[:len(c.states)-1]
}

// Transform returns the current user-to-device transform.
func (c *Canvas) Transform() Matrix {
	return c.state().transform
}

// SetTransform replaces the current transform.
func (c *Canvas) SetTransform(m Matrix) {
	c.state().transform = m
}

// ApplyTransform composes m onto the current transform; m applies
// before the existing transform.
func (c *Canvas) ApplyTransform(m Matrix) {
	st := c.state()
	st.transform = st.transform.PreTransform(m)
}

// ClipPath intersects the current clip with the filled area of the
// path, transformed by the current transform. Antialiased clip coverage
// multiplies with any earlier clip.
func (c *Canvas) ClipPath(path *Path, rule FillRule) {
	c.checkLive()
	st := c.state()
	transformed := path.Transform(st.transform)
	full := surface.IRectFromSize(c.width, c.height)
	cov := rasterize(transformed.Flatten(), full, rule)

	next := make([]uint8, c.width*c.height)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			i := y*c.width + x
			a := coverageByte(cov.at(x, y))
			if st.clip != nil {
				a = uint8((uint32(a)*uint32(st.clip[i]) + 127) / 255)
			}
			next[i] = a
		}
	}
	st.clip = next
}

// ClipCoverage intersects the current clip with a prebuilt full-canvas
// coverage buffer. The buffer must hold width*height bytes.
func (c *Canvas) ClipCoverage(coverage []uint8) {
	c.checkLive()
	st := c.state()
	if st.clip == nil {
		next := make([]uint8, len(coverage))
		copy(next, coverage)
		st.clip = next
		return
	}
	next := make([]uint8, len(coverage))
	for i, a := range coverage {
		next[i] = uint8((uint32(a)*uint32(st.clip[i]) + 127) / 255)
	}
	st.clip = next
}

// clipAt returns the clip coverage at a pixel, 255 when unclipped.
func (c *Canvas) clipAt(x, y int) uint8 {
	clip := c.state().clip
	if clip == nil {
		return 255
	}
	return clip[y*c.width+x]
}

// FillPath fills the path under the current transform, sampling color
// from the device-space sampler.
func (c *Canvas) FillPath(path *Path, rule FillRule, sample sampler) {
	c.checkLive()
	st := c.state()
	transformed := path.Transform(st.transform)

	full := surface.IRectFromSize(c.width, c.height)
	bounds := transformed.Bounds().Outer().Intersect(full)
	if bounds.IsEmpty() {
		return
	}

	cov := rasterize(transformed.Flatten(), bounds, rule)
	c.fillCoverage(bounds, func(x, y int) uint8 {
		return coverageByte(cov.at(x, y))
	}, sample)

	c.extendLink(FromIRect(bounds))
}

// fillCoverage composites sampled color through a coverage callback and
// the current clip, source-over onto the target.
func (c *Canvas) fillCoverage(bounds surface.IRect, covAt func(x, y int) uint8, sample sampler) {
	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			a := covAt(x, y)
			if a == 0 {
				continue
			}
			if clip := c.clipAt(x, y); clip < 255 {
				a = uint8((uint32(a)*uint32(clip) + 127) / 255)
				if a == 0 {
					continue
				}
			}
			src := sample(float64(x)+0.5, float64(y)+0.5).Pixel().MulAlpha(a)
			if src.A == 0 && src.R == 0 && src.G == 0 && src.B == 0 {
				continue
			}
			c.target.SetPixel(x, y, surface.OpOver.Apply(src, c.target.GetPixel(x, y)))
		}
	}
}

// FillAlphaMask composites a glyph or other alpha mask placed at origin,
// sampling color from the device-space sampler.
func (c *Canvas) FillAlphaMask(mask *image.Alpha, origin image.Point, sample sampler) {
	c.checkLive()
	mb := mask.Bounds()
	bounds := surface.NewIRect(
		origin.X+mb.Min.X, origin.Y+mb.Min.Y,
		origin.X+mb.Max.X, origin.Y+mb.Max.Y,
	).Intersect(surface.IRectFromSize(c.width, c.height))
	if bounds.IsEmpty() {
		return
	}
	c.fillCoverage(bounds, func(x, y int) uint8 {
		return mask.AlphaAt(x-origin.X, y-origin.Y).A
	}, sample)
	c.extendLink(FromIRect(bounds))
}

// CompositeSurface combines a source surface onto the canvas. The
// source is transformed by m, attenuated by opacity and the optional
// alpha mask, cut by the current clip, and combined with the operator.
// The mask, when present, must match the canvas size.
func (c *Canvas) CompositeSurface(src *surface.Shared, m Matrix, op surface.Operator, opacity float64, mask *surface.Shared) {
	c.checkLive()

	aligned := src
	if !m.IsIdentity() {
		ex := surface.New(c.width, c.height, src.Type())
		draw.BiLinear.Transform(
			ex.RGBA(),
			f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F},
			src.Image(), src.Image().Bounds(), draw.Src, nil,
		)
		aligned = ex.Share()
	}

	alphaScale := uint8(clamp01(opacity)*255 + 0.5)
	ab := aligned.Bounds()

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			var s surface.Pixel
			if ab.Contains(x, y) {
				s = aligned.GetPixel(x, y)
			}
			if mask != nil {
				s = s.MulAlpha(mask.GetPixel(x, y).A)
			}
			if alphaScale < 255 {
				s = s.MulAlpha(alphaScale)
			}
			if clip := c.clipAt(x, y); clip < 255 {
				s = s.MulAlpha(clip)
			}
			d := c.target.GetPixel(x, y)
			c.target.SetPixel(x, y, op.Apply(s, d))
		}
	}
}

// BeginLink opens a hyperlink region. Drawing until the matching
// EndLink extends the region's extent.
func (c *Canvas) BeginLink(uri string) {
	c.openLinkURI = uri
	c.openLinkSet = false
	c.linkOpen = true
}

// EndLink closes the current hyperlink region and records it if any
// drawing happened inside.
func (c *Canvas) EndLink() {
	if c.linkOpen && c.openLinkSet {
		c.links = append(c.links, LinkRegion{URI: c.openLinkURI, Rect: c.openLinkRect})
	}
	c.linkOpen = false
	c.openLinkSet = false
}

func (c *Canvas) extendLink(r Rect) {
	if !c.linkOpen {
		return
	}
	if !c.openLinkSet {
		c.openLinkRect = r
		c.openLinkSet = true
		return
	}
	c.openLinkRect = c.openLinkRect.Union(r)
}

// Links returns the hyperlink regions recorded so far.
func (c *Canvas) Links() []LinkRegion {
	return c.links
}

// Snapshot returns an immutable copy of the current pixels. The canvas
// stays usable.
func (c *Canvas) Snapshot() *surface.Shared {
	c.checkLive()
	return c.target.Snapshot()
}

// Finish seals the canvas and hands ownership of the pixels to the
// returned surface. Any further drawing panics.
func (c *Canvas) Finish() *surface.Shared {
	c.checkLive()
	c.finished = true
	return c.target.Share()
}
