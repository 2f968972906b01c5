package svgr

import "fmt"

// NodeID identifies a referenceable definition inside a Document. The
// zero value means "no reference".
type NodeID int

// RefKind tags what a referenceable node defines.
type RefKind int

const (
	RefClipPath RefKind = iota
	RefMask
	RefPattern
	RefGroup
	RefFilter
)

// ClipDef is a clip-path definition: shape layers whose union silhouette
// becomes the clip region.
type ClipDef struct {
	Units   CoordUnits
	Content []*Layer
}

// MaskDef is a mask definition.
type MaskDef struct {
	// Units is the coordinate system of Region.
	Units CoordUnits
	// ContentUnits is the coordinate system of Content.
	ContentUnits CoordUnits
	// Region clips the mask contents.
	Region Rect
	// Type selects luminance or alpha masking.
	Type MaskType
	// Content is the subtree rendered to produce the mask.
	Content []*Layer
}

// PatternDef is a paint-server pattern definition.
type PatternDef struct {
	// Units is the coordinate system of Region.
	Units CoordUnits
	// ContentUnits is the coordinate system of Content.
	ContentUnits CoordUnits
	// Region is one tile's rectangle.
	Region Rect
	// Content is the subtree rendered into each tile.
	Content []*Layer
}

// RefNode is one referenceable definition stored in a Document arena.
// Exactly one payload field matching Kind is set.
type RefNode struct {
	id   NodeID
	Kind RefKind

	Clip    *ClipDef
	Mask    *MaskDef
	Pattern *PatternDef
	Group   []*Layer
	Filter  FilterPrimitive
}

// ID returns the node's stable handle.
func (n *RefNode) ID() NodeID { return n.id }

// Document is an arena of referenceable definitions addressed by stable
// handles, plus the layer tree roots built on top of them. Reference
// cycles between definitions are representable; they are detected at
// render time, not construction time.
type Document struct {
	nodes  map[NodeID]*RefNode
	nextID NodeID
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{nodes: make(map[NodeID]*RefNode)}
}

func (d *Document) add(n *RefNode) NodeID {
	d.nextID++
	n.id = d.nextID
	d.nodes[n.id] = n
	return n.id
}

// AddClipPath registers a clip-path definition and returns its handle.
func (d *Document) AddClipPath(clip *ClipDef) NodeID {
	return d.add(&RefNode{Kind: RefClipPath, Clip: clip})
}

// AddMask registers a mask definition and returns its handle.
func (d *Document) AddMask(mask *MaskDef) NodeID {
	return d.add(&RefNode{Kind: RefMask, Mask: mask})
}

// AddPattern registers a pattern definition and returns its handle.
func (d *Document) AddPattern(pattern *PatternDef) NodeID {
	return d.add(&RefNode{Kind: RefPattern, Pattern: pattern})
}

// AddGroup registers a reusable subtree (the target of use references)
// and returns its handle.
func (d *Document) AddGroup(layers ...*Layer) NodeID {
	return d.add(&RefNode{Kind: RefGroup, Group: layers})
}

// AddFilter registers a filter primitive and returns its handle.
func (d *Document) AddFilter(p FilterPrimitive) NodeID {
	return d.add(&RefNode{Kind: RefFilter, Filter: p})
}

// node looks a definition up without acquiring it.
func (d *Document) node(id NodeID) (*RefNode, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// AcquiredNodes resolves references to definitions during one render. It
// detects reference cycles with a "currently acquiring" set and enforces
// the global acquisition cap, turning unbounded reference chains into
// bounded, reported failures.
type AcquiredNodes struct {
	doc         *Document
	acquiring   map[NodeID]bool
	numAcquired int
}

func newAcquiredNodes(doc *Document) *AcquiredNodes {
	return &AcquiredNodes{
		doc:       doc,
		acquiring: make(map[NodeID]bool),
	}
}

// Acquire resolves id, marking it as in use until the returned release
// function runs. Acquiring a node that is already being acquired reports
// a cycle. Every successful acquisition counts against the per-render
// reference cap.
func (a *AcquiredNodes) Acquire(id NodeID) (*RefNode, func(), error) {
	if a.numAcquired >= maxReferencedElements {
		return nil, nil, ErrMaxReferencesExceeded
	}
	a.numAcquired++

	if a.acquiring[id] {
		return nil, nil, fmt.Errorf("node %d: %w", id, ErrCircularReference)
	}

	n, ok := a.doc.node(id)
	if !ok {
		return nil, nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}

	a.acquiring[id] = true
	release := func() { delete(a.acquiring, id) }
	return n, release, nil
}

// LayerKind tags what a layer draws.
type LayerKind int

const (
	// LayerGroup draws child layers in document order.
	LayerGroup LayerKind = iota
	// LayerShape fills a path.
	LayerShape
	// LayerText fills positioned glyph runs.
	LayerText
	// LayerUse re-draws a referenced subtree.
	LayerUse
)

// UseRef points a use layer at a reusable subtree.
type UseRef struct {
	Node NodeID
	// X and Y shift the referenced content.
	X, Y float64
	// Width and Height of zero disable rendering entirely.
	Width, Height float64
}

// Layer is one drawable element: a stacking context plus content. A
// layer carrying a LayoutViewport draws its content inside that
// viewport's coordinate system.
type Layer struct {
	Stacking StackingContext
	Kind     LayerKind

	Shape    *Shape
	Text     *TextSpan
	Children []*Layer
	Use      *UseRef

	Viewport *LayoutViewport
}

// GroupLayer builds a group layer with a default stacking context.
func GroupLayer(children ...*Layer) *Layer {
	return &Layer{Stacking: NewStackingContext(), Kind: LayerGroup, Children: children}
}

// ShapeLayer builds a shape layer with a default stacking context.
func ShapeLayer(path *Path, paint Paint) *Layer {
	return &Layer{
		Stacking: NewStackingContext(),
		Kind:     LayerShape,
		Shape:    &Shape{Path: path, Fill: paint, FillRule: FillNonZero},
	}
}

// TextLayer builds a text layer with a default stacking context.
func TextLayer(span *TextSpan) *Layer {
	return &Layer{Stacking: NewStackingContext(), Kind: LayerText, Text: span}
}

// UseLayer builds a use layer with a default stacking context.
func UseLayer(use *UseRef) *Layer {
	return &Layer{Stacking: NewStackingContext(), Kind: LayerUse, Use: use}
}
